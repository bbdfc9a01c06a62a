package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/auth"
)

func TestListQuery(t *testing.T) {
	filters := map[string]string{"status": "status", "storeId": "store_id"}

	r := httptest.NewRequest(http.MethodGet, "/x?page=2&limit=5&search=+ups+&sortBy=createdAt&sortOrder=asc&status=SENT&storeId=3&dateTo=2024-05-01", nil)
	q, err := listQuery(r, filters)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, "ups", q.Search)
	assert.Equal(t, "createdAt", q.SortBy)
	assert.Equal(t, map[string]any{"status": "SENT", "store_id": uint(3)}, q.Filters)
	require.NotNil(t, q.DateTo)
	assert.Equal(t, time.Date(2024, 5, 1, 23, 59, 59, 999999999, time.UTC), *q.DateTo)

	// unknown filters are ignored
	r = httptest.NewRequest(http.MethodGet, "/x?password=x", nil)
	q, err = listQuery(r, filters)
	require.NoError(t, err)
	assert.Nil(t, q.Filters)
}

func TestListQueryRejectsBadInput(t *testing.T) {
	for _, query := range []string{
		"page=0",
		"limit=abc",
		"storeId=shop",
		"sortOrder=sideways",
		"dateFrom=yesterday",
		"dateFrom=2024-05-02&dateTo=2024-05-01",
	} {
		r := httptest.NewRequest(http.MethodGet, "/x?"+query, nil)
		_, err := listQuery(r, map[string]string{"storeId": "store_id"})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest, query)
	}
}

func TestRequestViewRestoresBody(t *testing.T) {
	var (
		view auth.RequestView
		body string
	)
	router := chi.NewRouter()
	router.Post("/firms/{firmId}/stores", func(w http.ResponseWriter, r *http.Request) {
		var err error
		view, err = requestView(r)
		require.NoError(t, err)
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
	})

	payload := `{"firmId":8,"name":"Harbor","active":true,"tags":["a"]}`
	req := httptest.NewRequest(http.MethodPost, "/firms/7/stores?firmId=9", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, map[string]string{"firmId": "7"}, view.Params)
	assert.Equal(t, map[string]string{"firmId": "8", "name": "Harbor", "active": "true"}, view.Body)
	assert.Equal(t, map[string]string{"firmId": "9"}, view.Query)
	assert.Equal(t, payload, body)
}

func TestRequestViewIgnoresNonJSONBodies(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("firmId=8"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	view, err := requestView(req)
	require.NoError(t, err)
	assert.Empty(t, view.Body)

	raw, _ := io.ReadAll(req.Body)
	assert.Equal(t, "firmId=8", string(raw))
}
