package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/repositories"
)

func TestInfluencerCreateNormalizesHandle(t *testing.T) {
	repo := newMemRepo(
		func(i *models.Influencer, id uint) { i.ID = id },
		func(i *models.Influencer) uint { return i.ID },
	)
	svc := NewInfluencerService(zap.NewNop(), repo)

	inf, err := svc.Create(context.Background(), InfluencerInput{Name: "Jo", Handle: " @JoCooks "})
	require.NoError(t, err)
	assert.Equal(t, "jocooks", inf.Handle)
	assert.Equal(t, models.InfluencerStatusActive, inf.Status)

	followers := int64(12000)
	updated, err := svc.Update(context.Background(), inf.ID, UpdateInfluencerInput{FollowersCount: &followers})
	require.NoError(t, err)
	assert.Equal(t, int64(12000), updated.FollowersCount)

	page, err := svc.List(context.Background(), repositories.ListQuery{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, repositories.MaxLimit, page.Limit)
	assert.Equal(t, 1, page.Page)
}

func TestCampaignDatesMustBeOrdered(t *testing.T) {
	svc := NewCampaignService(zap.NewNop(), nil)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), CampaignInput{Name: "Summer", StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestProductRejectsNegativePrice(t *testing.T) {
	repo := newMemRepo(
		func(p *models.Product, id uint) { p.ID = id },
		func(p *models.Product) uint { return p.ID },
	)
	svc := NewProductService(zap.NewNop(), repo)

	_, err := svc.Create(context.Background(), ProductInput{Name: "Mug", SKU: "mug-1", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	product, err := svc.Create(context.Background(), ProductInput{Name: "Mug", SKU: "mug-1", Price: decimal.RequireFromString("12.5")})
	require.NoError(t, err)
	assert.Equal(t, "MUG-1", product.SKU)
}

func TestMetricCreate(t *testing.T) {
	repo := newMemRepo(
		func(m *models.PerformanceMetric, id uint) { m.ID = id },
		func(m *models.PerformanceMetric) uint { return m.ID },
	)
	svc := NewMetricService(zap.NewNop(), repo)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	_, err := svc.Create(ctx, MetricInput{MetricType: "VIEWS", Value: 1, InfluencerID: uintPtr(1)})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Create(ctx, MetricInput{MetricType: models.MetricReach, Value: 1})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	metric, err := svc.Create(ctx, MetricInput{MetricType: models.MetricInstagramLinkClicks, Value: 40, CampaignID: uintPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, metric.RecordedAt)
}

func TestStoresBelongToExistingFirm(t *testing.T) {
	firms := newMemRepo(
		func(f *models.Firm, id uint) { f.ID = id },
		func(f *models.Firm) uint { return f.ID },
	)
	stores := newMemRepo(
		func(s *models.Store, id uint) { s.ID = id },
		func(s *models.Store) uint { return s.ID },
	)
	svc := NewTenancyService(zap.NewNop(), firms, stores)
	ctx := context.Background()

	_, err := svc.CreateStore(ctx, 9, StoreInput{Name: "Downtown"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	firm, err := svc.CreateFirm(ctx, FirmInput{Name: "Acme"})
	require.NoError(t, err)
	store, err := svc.CreateStore(ctx, firm.ID, StoreInput{Name: "Downtown"})
	require.NoError(t, err)
	assert.Equal(t, firm.ID, store.FirmID)
}
