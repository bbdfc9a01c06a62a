package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpInFlight))
	m.RequestFinished("GET", "/influencers", 200, 20*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/influencers", "200")))

	m.WorkerRun("shipment-tracking", nil, time.Second)
	m.WorkerRun("shipment-tracking", errors.New("boom"), time.Second)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.workerRuns.WithLabelValues("shipment-tracking", "error")))

	m.ShipmentChecked("ups", CheckChanged)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shipmentChecks.WithLabelValues("ups", CheckChanged)))

	m.InvoicesProcessed(3, 1, 0)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.invoiceOCR.WithLabelValues("processed")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.ShipmentChecked("uds", CheckUnchanged)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `influencer_crm_shipments_carrier_checks_total{carrier="uds",outcome="unchanged"} 1`)
}
