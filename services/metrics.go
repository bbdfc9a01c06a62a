package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/repositories"
)

type MetricInput struct {
	MetricType   models.MetricType `json:"metricType" validate:"required"`
	Value        float64           `json:"value"`
	InfluencerID *uint             `json:"influencerId"`
	CampaignID   *uint             `json:"campaignId"`
	StoreID      *uint             `json:"storeId"`
	RecordedAt   *time.Time        `json:"recordedAt"`
}

// MetricService records performance metrics. Metrics are never updated.
type MetricService struct {
	logger *zap.Logger
	repo   Repo[models.PerformanceMetric]
	now    func() time.Time
}

func NewMetricService(logger *zap.Logger, repo Repo[models.PerformanceMetric]) *MetricService {
	return &MetricService{logger: logger, repo: repo, now: time.Now}
}

func (s *MetricService) Create(ctx context.Context, in MetricInput) (*models.PerformanceMetric, error) {
	if !in.MetricType.Valid() {
		return nil, apperrors.BadRequest("unknown metric type %q", in.MetricType)
	}
	if in.InfluencerID == nil && in.CampaignID == nil && in.StoreID == nil {
		return nil, apperrors.BadRequest("metric needs at least one of influencerId, campaignId or storeId")
	}

	recordedAt := s.now()
	if in.RecordedAt != nil {
		recordedAt = *in.RecordedAt
	}
	metric := &models.PerformanceMetric{
		MetricType:   in.MetricType,
		Value:        in.Value,
		InfluencerID: in.InfluencerID,
		CampaignID:   in.CampaignID,
		StoreID:      in.StoreID,
		RecordedAt:   recordedAt.UTC(),
	}
	if err := s.repo.Create(ctx, metric); err != nil {
		return nil, err
	}
	return metric, nil
}

func (s *MetricService) Get(ctx context.Context, id uint) (*models.PerformanceMetric, error) {
	return s.repo.Get(ctx, id)
}

func (s *MetricService) List(ctx context.Context, q repositories.ListQuery) (*Page[models.PerformanceMetric], error) {
	return listPage(ctx, s.repo.List, q)
}

func (s *MetricService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
