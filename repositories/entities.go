package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
)

func NewInfluencerStore(db *gorm.DB) *Store[models.Influencer] {
	return NewStore[models.Influencer](db, "influencer", ListSpec{
		SearchColumns: []string{"name", "handle", "email", "city"},
		SortColumns: map[string]string{
			"name":           "name",
			"createdAt":      "created_at",
			"followersCount": "followers_count",
			"engagementRate": "engagement_rate",
		},
		DefaultSort: "created_at",
	})
}

func NewProductStore(db *gorm.DB) *Store[models.Product] {
	return NewStore[models.Product](db, "product", ListSpec{
		SearchColumns: []string{"name", "sku", "category"},
		SortColumns: map[string]string{
			"name":      "name",
			"price":     "price",
			"stock":     "stock",
			"createdAt": "created_at",
		},
		DefaultSort: "created_at",
	})
}

func NewFinancialDocumentStore(db *gorm.DB) *Store[models.FinancialDocument] {
	return NewStore[models.FinancialDocument](db, "financial document", ListSpec{
		SearchColumns: []string{"title", "reference"},
		SortColumns: map[string]string{
			"documentDate": "document_date",
			"amount":       "amount",
			"createdAt":    "created_at",
		},
		DefaultSort: "created_at",
		DateColumn:  "document_date",
	})
}

func NewMetricStore(db *gorm.DB) *Store[models.PerformanceMetric] {
	return NewStore[models.PerformanceMetric](db, "performance metric", ListSpec{
		SortColumns: map[string]string{
			"recordedAt": "recorded_at",
			"value":      "value",
		},
		DefaultSort: "recorded_at",
		DateColumn:  "recorded_at",
	})
}

func NewPayoutStore(db *gorm.DB) *Store[models.Payout] {
	return NewStore[models.Payout](db, "payout", ListSpec{
		SearchColumns: []string{"reference"},
		SortColumns: map[string]string{
			"amount":    "amount",
			"paidAt":    "paid_at",
			"createdAt": "created_at",
		},
		DefaultSort: "created_at",
		DateColumn:  "created_at",
	})
}

func NewFirmStore(db *gorm.DB) *Store[models.Firm] {
	return NewStore[models.Firm](db, "firm", ListSpec{
		SearchColumns: []string{"name"},
		SortColumns:   map[string]string{"name": "name", "createdAt": "created_at"},
		DefaultSort:   "name",
	})
}

func NewStoreStore(db *gorm.DB) *Store[models.Store] {
	return NewStore[models.Store](db, "store", ListSpec{
		SearchColumns: []string{"name", "city"},
		SortColumns:   map[string]string{"name": "name", "createdAt": "created_at"},
		DefaultSort:   "name",
	})
}

type UserRepository struct {
	*Store[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Store: NewStore[models.User](db, "user", ListSpec{
		SearchColumns: []string{"name", "email"},
		SortColumns:   map[string]string{"name": "name", "email": "email", "createdAt": "created_at"},
		DefaultSort:   "created_at",
	})}
}

// ByEmail returns nil without error when no user has the address.
func (r *UserRepository) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type CampaignRepository struct {
	*Store[models.Campaign]
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{Store: NewStore[models.Campaign](db, "campaign", ListSpec{
		SearchColumns: []string{"name", "description"},
		SortColumns: map[string]string{
			"name":      "name",
			"budget":    "budget",
			"startDate": "start_date",
			"createdAt": "created_at",
		},
		DefaultSort: "created_at",
		DateColumn:  "start_date",
	})}
}

func (r *CampaignRepository) Links(ctx context.Context, campaignID uint) ([]models.InfluencerCampaignLink, error) {
	var links []models.InfluencerCampaignLink
	err := r.db.WithContext(ctx).
		Preload("Influencer").
		Where("campaign_id = ?", campaignID).
		Order("created_at").
		Find(&links).Error
	return links, err
}

func (r *CampaignRepository) Link(ctx context.Context, link *models.InfluencerCampaignLink) error {
	err := r.db.WithContext(ctx).Create(link).Error
	if err != nil && errors.Is(r.translate(err, 0), apperrors.ErrConflict) {
		return apperrors.Conflict("influencer %d is already linked to campaign %d", link.InfluencerID, link.CampaignID)
	}
	return r.translate(err, 0)
}

func (r *CampaignRepository) UpdateLink(ctx context.Context, campaignID, influencerID uint, status models.LinkStatus, fee *float64) (*models.InfluencerCampaignLink, error) {
	var link models.InfluencerCampaignLink
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND influencer_id = ?", campaignID, influencerID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("influencer %d is not linked to campaign %d", influencerID, campaignID)
	}
	if err != nil {
		return nil, err
	}
	if status != "" {
		link.Status = status
	}
	if fee != nil {
		link.AgreedFee = *fee
	}
	if err := r.db.WithContext(ctx).Save(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *CampaignRepository) Unlink(ctx context.Context, campaignID, influencerID uint) error {
	result := r.db.WithContext(ctx).
		Where("campaign_id = ? AND influencer_id = ?", campaignID, influencerID).
		Delete(&models.InfluencerCampaignLink{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("influencer %d is not linked to campaign %d", influencerID, campaignID)
	}
	return nil
}
