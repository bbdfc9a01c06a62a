package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer-crm-service/models"
)

func exhaustive[S comparable](t *testing.T, g *Guard[S], all []S) {
	t.Helper()
	for _, from := range all {
		for _, to := range all {
			entry, err := g.Transition(Request[S]{Current: from, Requested: to})
			if g.Table().Allows(from, to) {
				require.NoError(t, err, "%v -> %v", from, to)
				assert.Equal(t, to, entry.Status)
				assert.False(t, entry.Timestamp.IsZero())
				continue
			}
			require.Error(t, err, "%v -> %v", from, to)
			assert.True(t, errors.Is(err, ErrInvalidTransition))
		}
	}
}

func TestCourierTransitionsExhaustive(t *testing.T) {
	exhaustive(t, CourierGuard(), models.CourierStatuses)
}

func TestInvoiceTransitionsExhaustive(t *testing.T) {
	exhaustive(t, InvoiceGuard(), models.InvoiceStatuses)
}

func TestPayoutTransitionsExhaustive(t *testing.T) {
	exhaustive(t, PayoutGuard(), models.PayoutStatuses)
}

func TestSelfTransitionsRejected(t *testing.T) {
	for _, s := range models.CourierStatuses {
		_, err := CourierGuard().Transition(Request[models.CourierStatus]{Current: s, Requested: s})
		assert.ErrorIs(t, err, ErrInvalidTransition, s)
	}
	for _, s := range models.InvoiceStatuses {
		_, err := InvoiceGuard().Transition(Request[models.InvoiceStatus]{Current: s, Requested: s})
		assert.ErrorIs(t, err, ErrInvalidTransition, s)
	}
}

func TestCourierEdges(t *testing.T) {
	g := CourierGuard()

	assert.True(t, g.Table().Allows(models.CourierStatusDelivered, models.CourierStatusReturned))
	assert.False(t, g.Table().Allows(models.CourierStatusDelivered, models.CourierStatusSent))
	assert.True(t, g.Table().Allows(models.CourierStatusFailed, models.CourierStatusPending))
	assert.Empty(t, g.Table().Next(models.CourierStatusReturned))
}

func TestInvoiceProcessedOnlyBackToPending(t *testing.T) {
	g := InvoiceGuard()

	_, err := g.Transition(Request[models.InvoiceStatus]{
		Current:   models.InvoiceStatusProcessed,
		Requested: models.InvoiceStatusProcessing,
	})
	var te *TransitionError[models.InvoiceStatus]
	require.ErrorAs(t, err, &te)
	assert.Equal(t, []models.InvoiceStatus{models.InvoiceStatusPending}, te.Allowed)
	assert.Contains(t, err.Error(), "PROCESSED")
}

func TestTransitionCarriesEventDetails(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	actor := uint(42)
	g := CourierGuard().WithClock(func() time.Time { return fixed })

	entry, err := g.Transition(Request[models.CourierStatus]{
		Current:   models.CourierStatusSent,
		Requested: models.CourierStatusInTransit,
		Notes:     "picked up",
		Location:  "Berlin",
		ActorID:   &actor,
	})
	require.NoError(t, err)
	assert.Equal(t, fixed, entry.Timestamp)
	assert.Equal(t, "picked up", entry.Notes)
	assert.Equal(t, "Berlin", entry.Location)
	assert.Equal(t, &actor, entry.ActorID)

	explicit := fixed.Add(-time.Hour)
	entry, err = g.Transition(Request[models.CourierStatus]{
		Current:   models.CourierStatusInTransit,
		Requested: models.CourierStatusDelivered,
		Timestamp: explicit,
	})
	require.NoError(t, err)
	assert.Equal(t, explicit, entry.Timestamp)
}

func TestNextReturnsCopy(t *testing.T) {
	next := CourierTable.Next(models.CourierStatusPending)
	next[0] = models.CourierStatusReturned

	assert.Equal(t, models.CourierStatusSent, CourierTable[models.CourierStatusPending][0])
}
