package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
)

func uintPtr(v uint) *uint { return &v }

func TestAggregationQueryScope(t *testing.T) {
	_, _, err := AggregationQuery{}.Scope()
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	kind, id, err := AggregationQuery{FirmID: uintPtr(4)}.Scope()
	require.NoError(t, err)
	assert.Equal(t, ScopeFirm, kind)
	assert.Equal(t, uint(4), id)

	_, _, err = AggregationQuery{FirmID: uintPtr(4), StoreID: uintPtr(1)}.Scope()
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestAggregationQueryInvertedRange(t *testing.T) {
	from := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	for _, q := range []AggregationQuery{
		{StoreID: uintPtr(1), DateFrom: &from, DateTo: &to},
		{CampaignID: uintPtr(1), DateFrom: &from, DateTo: &to},
		{DateFrom: &from, DateTo: &to},
	} {
		err := q.Validate()
		assert.Equal(t, 400, apperrors.StatusOf(err))
	}

	same := from
	assert.NoError(t, AggregationQuery{StoreID: uintPtr(1), DateFrom: &from, DateTo: &same}.Validate())
}

func TestFoldNamedTotalsAndByType(t *testing.T) {
	agg := Fold([]models.PerformanceMetric{
		metric(models.MetricReach, 100),
		metric(models.MetricReach, 50),
		metric(models.MetricLikes, 7),
		metric(models.MetricConversions, 3),
		metric(models.MetricInstagramLinkClicks, 11),
	})

	assert.Equal(t, 150.0, agg.TotalReach)
	assert.Equal(t, 7.0, agg.TotalLikes)
	assert.Equal(t, 3.0, agg.TotalConversions)
	assert.Equal(t, 11.0, agg.ByType[models.MetricInstagramLinkClicks])
	assert.Equal(t, 150.0, agg.ByType[models.MetricReach])
	assert.Equal(t, 5, agg.MetricCount)
}

func TestFoldEmpty(t *testing.T) {
	agg := Fold(nil)
	assert.Zero(t, agg.MetricCount)
	assert.NotNil(t, agg.ByType)
	assert.Empty(t, agg.ByType)
}
