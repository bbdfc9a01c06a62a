package shipments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"influencer-crm-service/config"
	"influencer-crm-service/metrics"
	"influencer-crm-service/models"
	"influencer-crm-service/services"
	"influencer-crm-service/workers/shipments/processors"
)

var now = time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

type fakeUpdater struct {
	mu        sync.Mutex
	shipments []models.CourierShipment
	listErr   error
	updates   map[uint]services.CarrierUpdate
}

func (f *fakeUpdater) ListTracked(context.Context) ([]models.CourierShipment, error) {
	return f.shipments, f.listErr
}

func (f *fakeUpdater) ApplyCarrierUpdate(_ context.Context, id uint, update services.CarrierUpdate) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updates == nil {
		f.updates = map[uint]services.CarrierUpdate{}
	}
	f.updates[id] = update
	return update.Status != "", nil
}

type fakeRecorder struct {
	mu     sync.Mutex
	runs   []error
	checks map[string]int
}

func (r *fakeRecorder) WorkerRun(_ string, err error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, err)
}

func (r *fakeRecorder) ShipmentChecked(carrier, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.checks == nil {
		r.checks = map[string]int{}
	}
	r.checks[carrier+":"+outcome]++
}

type stubProcessor struct {
	result *processors.CarrierTrackingResults
	err    error
}

func (s stubProcessor) Process(_ context.Context, sh models.CourierShipment) (*processors.CarrierTrackingResults, error) {
	if s.err != nil {
		return nil, s.err
	}
	r := *s.result
	r.TrackingNumber = sh.TrackingNumber
	return &r, nil
}

func newWorker(updater *fakeUpdater, recorder *fakeRecorder) *Worker {
	w := NewWorker(zap.NewNop(), &config.Config{TrackingSchedule: "*/30 * * * *", UPSApi: &config.UpsApiConfig{}}, updater, recorder)
	w.now = func() time.Time { return now }
	return w
}

func at(d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func TestShouldCheck(t *testing.T) {
	w := newWorker(&fakeUpdater{}, &fakeRecorder{})

	cases := []struct {
		name     string
		shipment models.CourierShipment
		want     bool
	}{
		{"pending is not tracked", models.CourierShipment{Status: models.CourierStatusPending}, false},
		{"delivered is final", models.CourierShipment{Status: models.CourierStatusDelivered}, false},
		{"never checked", models.CourierShipment{Status: models.CourierStatusSent}, true},
		{"checked long ago", models.CourierShipment{Status: models.CourierStatusInTransit, LastCheckedAt: at(-7 * time.Hour)}, true},
		{"checked recently", models.CourierShipment{Status: models.CourierStatusInTransit, LastCheckedAt: at(-time.Hour)}, false},
		{"arriving soon", models.CourierShipment{Status: models.CourierStatusInTransit, LastCheckedAt: at(-20 * time.Minute), ExpectedAt: at(time.Hour)}, true},
		{"arriving soon but just checked", models.CourierShipment{Status: models.CourierStatusInTransit, LastCheckedAt: at(-5 * time.Minute), ExpectedAt: at(time.Hour)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, w.shouldCheck(tc.shipment))
		})
	}
}

func TestExecuteAppliesCarrierResults(t *testing.T) {
	updater := &fakeUpdater{shipments: []models.CourierShipment{
		{ID: 1, TrackingNumber: "UDS1", Carrier: "uds", Status: models.CourierStatusSent},
		{ID: 2, TrackingNumber: "OTHER1", Carrier: "other", Status: models.CourierStatusSent},
		{ID: 3, TrackingNumber: "UPS1", Carrier: "ups", Status: models.CourierStatusInTransit},
		{ID: 4, TrackingNumber: "FRESH", Carrier: "uds", Status: models.CourierStatusSent, LastCheckedAt: at(-time.Minute)},
	}}
	recorder := &fakeRecorder{}
	w := newWorker(updater, recorder)
	w.processors["uds"] = stubProcessor{result: &processors.CarrierTrackingResults{
		Status:        models.CourierStatusInTransit,
		CarrierStatus: "Received",
		LastLocation:  "MINNEAPOLIS, MN",
		LastCheckedAt: now,
	}}

	require.True(t, w.Ready(now))
	w.Execute(context.Background())

	require.Len(t, updater.updates, 3)
	assert.Equal(t, models.CourierStatusInTransit, updater.updates[1].Status)
	assert.Equal(t, "MINNEAPOLIS, MN", updater.updates[1].Location)
	assert.Equal(t, "Received", updater.updates[1].Notes)

	// no UPS credentials: handled by the fallback
	assert.Empty(t, updater.updates[3].Status)
	assert.NotContains(t, updater.updates, uint(4))

	assert.Equal(t, 1, recorder.checks["uds:"+metrics.CheckChanged])
	assert.Equal(t, 1, recorder.checks["other:"+metrics.CheckUnsupported])
	assert.Equal(t, 1, recorder.checks["ups:"+metrics.CheckUnsupported])
	require.Len(t, recorder.runs, 1)
	assert.NoError(t, recorder.runs[0])
	assert.True(t, w.Ready(now))
}

func TestExecuteRecordsFailures(t *testing.T) {
	updater := &fakeUpdater{shipments: []models.CourierShipment{
		{ID: 1, TrackingNumber: "UDS1", Carrier: "uds", Status: models.CourierStatusSent},
	}}
	recorder := &fakeRecorder{}
	w := newWorker(updater, recorder)
	w.processors["uds"] = stubProcessor{err: errors.New("timeout")}

	w.Execute(context.Background())
	assert.Empty(t, updater.updates)
	assert.Equal(t, 1, recorder.checks["uds:"+metrics.CheckFailed])

	updater.listErr = errors.New("db down")
	w.Execute(context.Background())
	require.Len(t, recorder.runs, 2)
	assert.EqualError(t, recorder.runs[1], "db down")
}

func TestExecuteSkipsWhenBusy(t *testing.T) {
	recorder := &fakeRecorder{}
	w := newWorker(&fakeUpdater{}, recorder)
	w.busy.Store(true)

	assert.False(t, w.Ready(now))
	w.Execute(context.Background())
	assert.Empty(t, recorder.runs)
}
