package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
)

func newShipmentService() (*ShipmentService, *memShipments) {
	repo := newMemShipments()
	svc := NewShipmentService(zap.NewNop(), repo)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func uintPtr(v uint) *uint { return &v }

func TestCreateShipmentStartsPending(t *testing.T) {
	svc, _ := newShipmentService()

	sh, err := svc.Create(context.Background(), CreateShipmentInput{TrackingNumber: " 1Z999 ", Carrier: "UPS"}, uintPtr(7))
	require.NoError(t, err)

	assert.Equal(t, "1Z999", sh.TrackingNumber)
	assert.Equal(t, "ups", sh.Carrier)
	assert.Equal(t, "https://www.ups.com/track?loc=en_US&tracknum=1Z999", sh.TrackingURL)
	assert.Equal(t, models.CourierStatusPending, sh.Status)
	require.Len(t, sh.Events, 1)
	assert.Equal(t, models.CourierStatusPending, sh.Events[0].Status)
	assert.Equal(t, "Shipment created", sh.Events[0].Notes)
	assert.Equal(t, fixedNow, sh.Events[0].Timestamp)
	assert.Equal(t, uint(7), *sh.Events[0].UserID)
}

func TestCreateShipmentRejectsDuplicatesAndUnknownCarriers(t *testing.T) {
	svc, _ := newShipmentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateShipmentInput{TrackingNumber: "ABC"}, nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateShipmentInput{TrackingNumber: "ABC"}, nil)
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, 400, apperrors.StatusOf(err))
	assert.Contains(t, err.Error(), "ABC")

	_, err = svc.Create(ctx, CreateShipmentInput{TrackingNumber: "XYZ", Carrier: "pigeon"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Create(ctx, CreateShipmentInput{TrackingNumber: "   "}, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateStatusFollowsCourierTable(t *testing.T) {
	svc, _ := newShipmentService()
	ctx := context.Background()
	sh, err := svc.Create(ctx, CreateShipmentInput{TrackingNumber: "T-1"}, nil)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, sh.ID, ShipmentStatusInput{Status: models.CourierStatusDelivered}, nil)
	require.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Equal(t, 400, apperrors.StatusOf(err))

	updated, err := svc.UpdateStatus(ctx, sh.ID, ShipmentStatusInput{Status: models.CourierStatusSent, Location: "Warehouse"}, uintPtr(3))
	require.NoError(t, err)
	assert.Equal(t, models.CourierStatusSent, updated.Status)
	require.Len(t, updated.Events, 2)
	last := updated.Events[len(updated.Events)-1]
	assert.Equal(t, models.CourierStatusSent, last.Status)
	assert.Equal(t, "Warehouse", last.Location)
	assert.Equal(t, uint(3), *last.UserID)

	// the plain status endpoint guards no-op requests too
	_, err = svc.UpdateStatus(ctx, sh.ID, ShipmentStatusInput{Status: models.CourierStatusSent}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, 999, ShipmentStatusInput{Status: models.CourierStatusSent}, nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.UpdateStatus(ctx, sh.ID, ShipmentStatusInput{Status: "LOST"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRecordEvent(t *testing.T) {
	svc, _ := newShipmentService()
	ctx := context.Background()
	sh, err := svc.Create(ctx, CreateShipmentInput{TrackingNumber: "T-2"}, nil)
	require.NoError(t, err)
	at := time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC)

	t.Run("same status appends without guard", func(t *testing.T) {
		updated, err := svc.RecordEvent(ctx, sh.ID, TimelineEventInput{
			Status:    models.CourierStatusPending,
			Timestamp: at,
			Notes:     "Label printed",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, models.CourierStatusPending, updated.Status)
		require.Len(t, updated.Events, 2)
		assert.Equal(t, "Label printed", updated.Events[1].Notes)
		assert.Equal(t, at, updated.Events[1].Timestamp)
	})

	t.Run("changed status is validated", func(t *testing.T) {
		_, err := svc.RecordEvent(ctx, sh.ID, TimelineEventInput{Status: models.CourierStatusInTransit, Timestamp: at}, nil)
		require.ErrorIs(t, err, apperrors.ErrInvalidTransition)

		updated, err := svc.RecordEvent(ctx, sh.ID, TimelineEventInput{
			Status:    models.CourierStatusSent,
			Timestamp: at.Add(time.Hour),
			UserID:    uintPtr(11),
		}, uintPtr(5))
		require.NoError(t, err)
		assert.Equal(t, models.CourierStatusSent, updated.Status)
		last := updated.Events[len(updated.Events)-1]
		assert.Equal(t, models.CourierStatusSent, last.Status)
		assert.Equal(t, uint(11), *last.UserID)
	})

	timeline, err := svc.Timeline(ctx, sh.ID)
	require.NoError(t, err)
	require.Len(t, timeline, 3)
	assert.Equal(t, timeline[len(timeline)-1].Status, models.CourierStatusSent)
}

func TestBackdatedEventStaysLast(t *testing.T) {
	svc, _ := newShipmentService()
	ctx := context.Background()
	sh, err := svc.Create(ctx, CreateShipmentInput{TrackingNumber: "T-9"}, nil)
	require.NoError(t, err)

	updated, err := svc.RecordEvent(ctx, sh.ID, TimelineEventInput{
		Status:    models.CourierStatusSent,
		Timestamp: fixedNow.Add(-24 * time.Hour),
	}, nil)
	require.NoError(t, err)

	require.Len(t, updated.Events, 2)
	assert.Equal(t, models.CourierStatusSent, updated.Status)
	assert.Equal(t, updated.Status, updated.Events[1].Status)
	assert.Equal(t, fixedNow.Add(-24*time.Hour), updated.Events[1].Timestamp)
}

func TestApplyCarrierUpdate(t *testing.T) {
	svc, repo := newShipmentService()
	ctx := context.Background()
	sh, err := svc.Create(ctx, CreateShipmentInput{TrackingNumber: "T-3", Carrier: "uds"}, nil)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, sh.ID, ShipmentStatusInput{Status: models.CourierStatusSent}, nil)
	require.NoError(t, err)

	checked := fixedNow.Add(2 * time.Hour)
	changed, err := svc.ApplyCarrierUpdate(ctx, sh.ID, CarrierUpdate{
		Status:    models.CourierStatusInTransit,
		Location:  "Minneapolis, MN",
		CheckedAt: checked,
	})
	require.NoError(t, err)
	assert.True(t, changed)

	stored := repo.items[sh.ID]
	assert.Equal(t, models.CourierStatusInTransit, stored.Status)
	assert.Equal(t, "Minneapolis, MN", stored.LastLocation)
	assert.Equal(t, checked, *stored.LastCheckedAt)
	assert.Len(t, stored.Events, 3)

	// IN_TRANSIT -> SENT is not an edge: location is kept, status is not.
	changed, err = svc.ApplyCarrierUpdate(ctx, sh.ID, CarrierUpdate{
		Status:    models.CourierStatusSent,
		Location:  "St. Paul, MN",
		CheckedAt: checked.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.False(t, changed)
	stored = repo.items[sh.ID]
	assert.Equal(t, models.CourierStatusInTransit, stored.Status)
	assert.Equal(t, "St. Paul, MN", stored.LastLocation)
	assert.Len(t, stored.Events, 3)

	// unmapped carrier status only refreshes the check time
	changed, err = svc.ApplyCarrierUpdate(ctx, sh.ID, CarrierUpdate{CheckedAt: checked.Add(2 * time.Hour)})
	require.NoError(t, err)
	assert.False(t, changed)

	tracked, err := svc.ListTracked(ctx)
	require.NoError(t, err)
	assert.Len(t, tracked, 1)
}

func TestUpdateAndDeleteShipment(t *testing.T) {
	svc, _ := newShipmentService()
	ctx := context.Background()
	sh, err := svc.Create(ctx, CreateShipmentInput{TrackingNumber: "T-4"}, nil)
	require.NoError(t, err)

	notes := "fragile"
	updated, err := svc.Update(ctx, sh.ID, UpdateShipmentInput{Notes: &notes, CampaignID: uintPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, "fragile", updated.Notes)
	assert.Equal(t, uint(2), *updated.CampaignID)
	assert.Equal(t, models.CourierStatusPending, updated.Status)

	require.NoError(t, svc.Delete(ctx, sh.ID))
	_, err = svc.Get(ctx, sh.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
