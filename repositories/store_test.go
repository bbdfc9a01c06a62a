package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"influencer-crm-service/analytics"
	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestStoreGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := NewProductStore(db).Get(context.Background(), 5)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "product 5 not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := NewProductStore(db).Create(context.Background(), &models.Product{Name: "Serum", SKU: "SER-1"})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, 400, apperrors.StatusOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreListPaginates(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE category = \$1 AND \(+LOWER\(name\) LIKE \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE category = \$1 .* ORDER BY price asc LIMIT \$\d+ OFFSET \$\d+`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "sku", "price"}).
			AddRow(6, "Lip balm", "LB-1", "4.50").
			AddRow(7, "Toner", "TN-2", "12.00"))

	items, total, err := NewProductStore(db).List(context.Background(), ListQuery{
		Page:      2,
		Limit:     5,
		Search:    "Balm",
		SortBy:    "price",
		SortOrder: "ASC",
		Filters:   map[string]any{"category": "skincare"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, items, 2)
	assert.Equal(t, "LB-1", items[0].SKU)
	assert.True(t, decimal.RequireFromString("12").Equal(items[1].Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM "influencers" WHERE "influencers"."id" = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewInfluencerStore(db).Delete(context.Background(), 9)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentTimelineKeepsAppendOrder(t *testing.T) {
	db, mock := newMockDB(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "courier_shipments" WHERE "courier_shipments"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tracking_number", "status"}).AddRow(4, "T-4", "SENT"))
	mock.ExpectQuery(`SELECT \* FROM "courier_shipment_events" WHERE "courier_shipment_events"."shipment_id" = \$1 ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "shipment_id", "status", "timestamp"}).
			AddRow(1, 4, "PENDING", created).
			AddRow(2, 4, "SENT", created.Add(-24*time.Hour)))

	shipment, err := NewShipmentRepository(db).Get(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, shipment.Events, 2)
	assert.Equal(t, shipment.Status, shipment.Events[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsMetricsEmptyStoreSetSkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)

	metrics, err := NewAnalyticsRepository(db).Metrics(context.Background(), analytics.MetricFilter{ByStores: true})

	require.NoError(t, err)
	assert.Empty(t, metrics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsMetricsByStores(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "performance_metrics" WHERE store_id IN \(\$1,\$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "metric_type", "value"}).
			AddRow(1, "REACH", 120.0).
			AddRow(2, "LIKES", 8.0))

	metrics, err := NewAnalyticsRepository(db).Metrics(context.Background(), analytics.MetricFilter{
		ByStores: true,
		StoreIDs: []uint{1, 2},
	})

	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, models.MetricReach, metrics[0].MetricType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListQueryNormalize(t *testing.T) {
	q := ListQuery{Page: -1, Limit: 1000, SortOrder: "sideways"}.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxLimit, q.Limit)
	assert.Equal(t, "desc", q.SortOrder)
	assert.Equal(t, 0, q.Offset())

	q = ListQuery{Page: 3, Limit: 20}.Normalize()
	assert.Equal(t, 40, q.Offset())

	assert.Equal(t, 3, TotalPages(21, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
}
