package repositories

import (
	"context"

	"gorm.io/gorm"

	"influencer-crm-service/analytics"
	"influencer-crm-service/models"
)

type AnalyticsRepository struct {
	db        *gorm.DB
	campaigns *Store[models.Campaign]
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db, campaigns: NewStore[models.Campaign](db, "campaign", ListSpec{})}
}

func (r *AnalyticsRepository) InfluencerExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Influencer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *AnalyticsRepository) Campaign(ctx context.Context, id uint) (*models.Campaign, error) {
	return r.campaigns.Get(ctx, id)
}

func (r *AnalyticsRepository) CampaignInfluencerCount(ctx context.Context, campaignID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.InfluencerCampaignLink{}).
		Where("campaign_id = ?", campaignID).
		Count(&count).Error
	return count, err
}

func (r *AnalyticsRepository) FirmStoreIDs(ctx context.Context, firmID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("firm_id = ?", firmID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *AnalyticsRepository) Metrics(ctx context.Context, filter analytics.MetricFilter) ([]models.PerformanceMetric, error) {
	if filter.ByStores && len(filter.StoreIDs) == 0 {
		return nil, nil
	}

	db := r.db.WithContext(ctx).Model(&models.PerformanceMetric{})
	if filter.ByStores {
		db = db.Where("store_id IN ?", filter.StoreIDs)
	}
	if filter.InfluencerID != nil {
		db = db.Where("influencer_id = ?", *filter.InfluencerID)
	}
	if filter.CampaignID != nil {
		db = db.Where("campaign_id = ?", *filter.CampaignID)
	}
	if filter.From != nil {
		db = db.Where("recorded_at >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("recorded_at <= ?", *filter.To)
	}

	var metrics []models.PerformanceMetric
	err := db.Order("recorded_at ASC").Find(&metrics).Error
	return metrics, err
}

var _ analytics.Repository = (*AnalyticsRepository)(nil)
