package ups

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"influencer-crm-service/config"
	"influencer-crm-service/models"
)

const detailsBody = `{
  "trackResponse": {
    "shipment": [{
      "inquiryNumber": "1Z999",
      "package": [{
        "trackingNumber": "1Z999",
        "deliveryDate": [{"type": "SDD", "date": "20250609"}],
        "deliveryTime": {"type": "EOD", "endTime": "200000"},
        "currentStatus": {"type": "I", "description": "On the Way", "code": "005"},
        "activity": [
          {"location": {"address": {"city": "Louisville", "stateProvince": "KY", "countryCode": "US"}}},
          {"location": {"address": {"city": "Chicago", "stateProvince": "IL", "countryCode": "US"}}}
        ]
      }]
    }]
  }
}`

func newServer(t *testing.T, details string, detailsStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/security/v1/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"token_type":"Bearer","expires_in":"14399","access_token":"tok"}`))
	})
	mux.HandleFunc("/api/track/v1/details/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" || r.Header.Get("transId") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(detailsStatus)
		_, _ = w.Write([]byte(details))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newProcessor(baseURI string) *TrackingProcessor {
	p := NewTrackingProcessor(zap.NewNop(), &config.UpsApiConfig{BaseUri: baseURI, ClientId: "client", ClientSecret: "secret"})
	p.now = func() time.Time { return time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC) }
	return p
}

func TestProcessMapsUPSResponse(t *testing.T) {
	srv := newServer(t, detailsBody, http.StatusOK)

	result, err := newProcessor(srv.URL).Process(context.Background(), models.CourierShipment{TrackingNumber: "1Z999"})
	require.NoError(t, err)

	assert.Equal(t, models.CourierStatusInTransit, result.Status)
	assert.Equal(t, "On the Way", result.CarrierStatus)
	assert.Equal(t, "Louisville, KY", result.LastLocation)
	require.NotNil(t, result.ExpectedAt)
	assert.Equal(t, time.Date(2025, 6, 9, 20, 0, 0, 0, time.UTC), *result.ExpectedAt)
	assert.Equal(t, time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC), result.LastCheckedAt)
}

func TestProcessSurfacesUpstreamErrors(t *testing.T) {
	srv := newServer(t, `{"response":{"errors":[{"code":"151044"}]}}`, http.StatusNotFound)

	_, err := newProcessor(srv.URL).Process(context.Background(), models.CourierShipment{TrackingNumber: "1Z000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestProcessRejectsEmptyShipment(t *testing.T) {
	srv := newServer(t, `{"trackResponse":{"shipment":[]}}`, http.StatusOK)

	_, err := newProcessor(srv.URL).Process(context.Background(), models.CourierShipment{TrackingNumber: "1Z001"})
	assert.Error(t, err)
}

func TestStatusTypesWithoutEquivalentAreUnmapped(t *testing.T) {
	assert.Empty(t, statusMap["M"])
	assert.Empty(t, statusMap["X"])
	assert.Equal(t, models.CourierStatusDelivered, statusMap["D"])
}
