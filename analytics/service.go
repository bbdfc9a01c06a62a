package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
)

// MetricFilter narrows the metric rows loaded for aggregation. When ByStores
// is set, StoreIDs is authoritative and an empty set matches nothing.
type MetricFilter struct {
	ByStores     bool
	StoreIDs     []uint
	InfluencerID *uint
	CampaignID   *uint
	From         *time.Time
	To           *time.Time
}

type Repository interface {
	InfluencerExists(ctx context.Context, id uint) (bool, error)
	Campaign(ctx context.Context, id uint) (*models.Campaign, error)
	CampaignInfluencerCount(ctx context.Context, campaignID uint) (int64, error)
	FirmStoreIDs(ctx context.Context, firmID uint) ([]uint, error)
	Metrics(ctx context.Context, filter MetricFilter) ([]models.PerformanceMetric, error)
}

type Service struct {
	logger *zap.Logger
	repo   Repository
}

func NewService(logger *zap.Logger, repo Repository) *Service {
	return &Service{logger: logger, repo: repo}
}

type InfluencerScore struct {
	InfluencerID     uint    `json:"influencerId"`
	PerformanceScore float64 `json:"performanceScore"`
	MetricCount      int     `json:"metricCount"`
}

func (s *Service) InfluencerScore(ctx context.Context, influencerID uint) (*InfluencerScore, error) {
	metrics, err := s.influencerMetrics(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	return &InfluencerScore{
		InfluencerID:     influencerID,
		PerformanceScore: PerformanceScore(metrics),
		MetricCount:      len(metrics),
	}, nil
}

func (s *Service) BudgetUtilization(ctx context.Context, campaignID uint) (*BudgetUtilization, error) {
	campaign, err := s.repo.Campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CampaignInfluencerCount(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	u := ComputeBudgetUtilization(campaign.Budget, campaign.BudgetSpent, campaign.BudgetAllocated, count)
	u.CampaignID = campaign.ID
	return &u, nil
}

func (s *Service) Aggregate(ctx context.Context, q AggregationQuery) (*Aggregation, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	kind, id, _ := q.Scope()

	filter := MetricFilter{From: q.DateFrom, To: q.DateTo}
	switch kind {
	case ScopeStore:
		filter.ByStores = true
		filter.StoreIDs = []uint{id}
	case ScopeFirm:
		storeIDs, err := s.repo.FirmStoreIDs(ctx, id)
		if err != nil {
			return nil, err
		}
		filter.ByStores = true
		filter.StoreIDs = storeIDs
	case ScopeInfluencer:
		filter.InfluencerID = &id
	case ScopeCampaign:
		filter.CampaignID = &id
	}

	metrics, err := s.repo.Metrics(ctx, filter)
	if err != nil {
		return nil, err
	}

	agg := Fold(metrics)
	agg.Scope = kind
	agg.ScopeID = id
	agg.DateFrom = q.DateFrom
	agg.DateTo = q.DateTo

	s.logger.Debug("Metrics aggregated",
		zap.String("scope", string(kind)),
		zap.Uint("scope_id", id),
		zap.Int("metric_count", agg.MetricCount),
	)
	return &agg, nil
}

type CampaignSummary struct {
	Budget  *BudgetUtilization `json:"budget"`
	Metrics *Aggregation       `json:"metrics"`
}

// CampaignSummary combines budget utilization with the campaign's lifetime metrics.
func (s *Service) CampaignSummary(ctx context.Context, campaignID uint) (*CampaignSummary, error) {
	budget, err := s.BudgetUtilization(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	metrics, err := s.Aggregate(ctx, AggregationQuery{CampaignID: &campaignID})
	if err != nil {
		return nil, err
	}
	return &CampaignSummary{Budget: budget, Metrics: metrics}, nil
}

type InfluencerSummary struct {
	Score   *InfluencerScore `json:"score"`
	Metrics *Aggregation     `json:"metrics"`
}

func (s *Service) InfluencerSummary(ctx context.Context, influencerID uint) (*InfluencerSummary, error) {
	metrics, err := s.influencerMetrics(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	agg := Fold(metrics)
	agg.Scope = ScopeInfluencer
	agg.ScopeID = influencerID
	return &InfluencerSummary{
		Score: &InfluencerScore{
			InfluencerID:     influencerID,
			PerformanceScore: PerformanceScore(metrics),
			MetricCount:      len(metrics),
		},
		Metrics: &agg,
	}, nil
}

func (s *Service) influencerMetrics(ctx context.Context, influencerID uint) ([]models.PerformanceMetric, error) {
	exists, err := s.repo.InfluencerExists(ctx, influencerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("influencer %d not found", influencerID)
	}
	return s.repo.Metrics(ctx, MetricFilter{InfluencerID: &influencerID})
}
