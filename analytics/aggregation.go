package analytics

import (
	"time"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
)

type ScopeKind string

const (
	ScopeStore      ScopeKind = "store"
	ScopeFirm       ScopeKind = "firm"
	ScopeInfluencer ScopeKind = "influencer"
	ScopeCampaign   ScopeKind = "campaign"
)

// AggregationQuery selects metrics for exactly one scope within [DateFrom, DateTo].
type AggregationQuery struct {
	StoreID      *uint
	FirmID       *uint
	InfluencerID *uint
	CampaignID   *uint
	DateFrom     *time.Time
	DateTo       *time.Time
}

// Scope resolves the single scope identifier of the query.
func (q AggregationQuery) Scope() (ScopeKind, uint, error) {
	var (
		kind  ScopeKind
		id    uint
		count int
	)
	pick := func(k ScopeKind, v *uint) {
		if v != nil {
			kind, id = k, *v
			count++
		}
	}
	pick(ScopeStore, q.StoreID)
	pick(ScopeFirm, q.FirmID)
	pick(ScopeInfluencer, q.InfluencerID)
	pick(ScopeCampaign, q.CampaignID)

	switch count {
	case 0:
		return "", 0, apperrors.BadRequest("one of storeId, firmId, influencerId or campaignId is required")
	case 1:
		return kind, id, nil
	default:
		return "", 0, apperrors.BadRequest("only one of storeId, firmId, influencerId or campaignId may be provided")
	}
}

// Validate checks the scope and the date window before any query runs.
func (q AggregationQuery) Validate() error {
	if q.DateFrom != nil && q.DateTo != nil && q.DateFrom.After(*q.DateTo) {
		return apperrors.BadRequest("dateFrom must be before or equal to dateTo")
	}
	_, _, err := q.Scope()
	return err
}

type Aggregation struct {
	Scope            ScopeKind                     `json:"scope"`
	ScopeID          uint                          `json:"scopeId"`
	DateFrom         *time.Time                    `json:"dateFrom,omitempty"`
	DateTo           *time.Time                    `json:"dateTo,omitempty"`
	TotalReach       float64                       `json:"totalReach"`
	TotalEngagement  float64                       `json:"totalEngagement"`
	TotalROI         float64                       `json:"totalRoi"`
	TotalFollowers   float64                       `json:"totalFollowers"`
	TotalLikes       float64                       `json:"totalLikes"`
	TotalComments    float64                       `json:"totalComments"`
	TotalShares      float64                       `json:"totalShares"`
	TotalConversions float64                       `json:"totalConversions"`
	ByType           map[models.MetricType]float64 `json:"byType"`
	MetricCount      int                           `json:"metricCount"`
}

// Fold sums metrics into the named totals and into ByType in a single pass.
// Types without a named total (INSTAGRAM_LINK_CLICKS) only appear in ByType.
func Fold(metrics []models.PerformanceMetric) Aggregation {
	agg := Aggregation{ByType: make(map[models.MetricType]float64)}
	for _, m := range metrics {
		switch m.MetricType {
		case models.MetricReach:
			agg.TotalReach += m.Value
		case models.MetricEngagement:
			agg.TotalEngagement += m.Value
		case models.MetricROI:
			agg.TotalROI += m.Value
		case models.MetricFollowers:
			agg.TotalFollowers += m.Value
		case models.MetricLikes:
			agg.TotalLikes += m.Value
		case models.MetricComments:
			agg.TotalComments += m.Value
		case models.MetricShares:
			agg.TotalShares += m.Value
		case models.MetricConversions:
			agg.TotalConversions += m.Value
		}
		agg.ByType[m.MetricType] += m.Value
		agg.MetricCount++
	}
	return agg
}
