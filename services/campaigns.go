package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/repositories"
)

type CampaignRepository interface {
	Repo[models.Campaign]
	Links(ctx context.Context, campaignID uint) ([]models.InfluencerCampaignLink, error)
	Link(ctx context.Context, link *models.InfluencerCampaignLink) error
	UpdateLink(ctx context.Context, campaignID, influencerID uint, status models.LinkStatus, fee *float64) (*models.InfluencerCampaignLink, error)
	Unlink(ctx context.Context, campaignID, influencerID uint) error
}

type CampaignInput struct {
	Name            string                `json:"name" validate:"required,max=150"`
	Description     string                `json:"description"`
	Status          models.CampaignStatus `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE PAUSED COMPLETED CANCELLED"`
	StartDate       *time.Time            `json:"startDate"`
	EndDate         *time.Time            `json:"endDate"`
	Budget          float64               `json:"budget" validate:"gte=0"`
	BudgetSpent     float64               `json:"budgetSpent" validate:"gte=0"`
	BudgetAllocated float64               `json:"budgetAllocated" validate:"gte=0"`
	StoreID         *uint                 `json:"storeId"`
}

type UpdateCampaignInput struct {
	Name            *string                `json:"name" validate:"omitempty,max=150"`
	Description     *string                `json:"description"`
	Status          *models.CampaignStatus `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE PAUSED COMPLETED CANCELLED"`
	StartDate       *time.Time             `json:"startDate"`
	EndDate         *time.Time             `json:"endDate"`
	Budget          *float64               `json:"budget" validate:"omitempty,gte=0"`
	BudgetSpent     *float64               `json:"budgetSpent" validate:"omitempty,gte=0"`
	BudgetAllocated *float64               `json:"budgetAllocated" validate:"omitempty,gte=0"`
	StoreID         *uint                  `json:"storeId"`
}

type LinkInfluencerInput struct {
	InfluencerID uint              `json:"influencerId" validate:"required"`
	Status       models.LinkStatus `json:"status" validate:"omitempty,oneof=INVITED ACCEPTED DECLINED COMPLETED"`
	AgreedFee    float64           `json:"agreedFee" validate:"gte=0"`
}

type UpdateLinkInput struct {
	Status    models.LinkStatus `json:"status" validate:"omitempty,oneof=INVITED ACCEPTED DECLINED COMPLETED"`
	AgreedFee *float64          `json:"agreedFee" validate:"omitempty,gte=0"`
}

type CampaignService struct {
	logger *zap.Logger
	repo   CampaignRepository
}

func NewCampaignService(logger *zap.Logger, repo CampaignRepository) *CampaignService {
	return &CampaignService{logger: logger, repo: repo}
}

func (s *CampaignService) Create(ctx context.Context, in CampaignInput) (*models.Campaign, error) {
	if err := checkDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = models.CampaignStatusDraft
	}
	campaign := &models.Campaign{
		Name:            in.Name,
		Description:     in.Description,
		Status:          status,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Budget:          in.Budget,
		BudgetSpent:     in.BudgetSpent,
		BudgetAllocated: in.BudgetAllocated,
		StoreID:         in.StoreID,
	}
	if err := s.repo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	s.logger.Debug("Campaign created", zap.Uint("campaign_id", campaign.ID))
	return campaign, nil
}

func (s *CampaignService) Get(ctx context.Context, id uint) (*models.Campaign, error) {
	return s.repo.Get(ctx, id)
}

func (s *CampaignService) List(ctx context.Context, q repositories.ListQuery) (*Page[models.Campaign], error) {
	return listPage(ctx, s.repo.List, q)
}

func (s *CampaignService) Update(ctx context.Context, id uint, in UpdateCampaignInput) (*models.Campaign, error) {
	campaign, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setString(&campaign.Name, in.Name)
	setString(&campaign.Description, in.Description)
	if in.Status != nil {
		campaign.Status = *in.Status
	}
	if in.StartDate != nil {
		campaign.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		campaign.EndDate = in.EndDate
	}
	if in.Budget != nil {
		campaign.Budget = *in.Budget
	}
	if in.BudgetSpent != nil {
		campaign.BudgetSpent = *in.BudgetSpent
	}
	if in.BudgetAllocated != nil {
		campaign.BudgetAllocated = *in.BudgetAllocated
	}
	if in.StoreID != nil {
		campaign.StoreID = in.StoreID
	}
	if err := checkDates(campaign.StartDate, campaign.EndDate); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *CampaignService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *CampaignService) Influencers(ctx context.Context, campaignID uint) ([]models.InfluencerCampaignLink, error) {
	if _, err := s.repo.Get(ctx, campaignID); err != nil {
		return nil, err
	}
	links, err := s.repo.Links(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if links == nil {
		links = []models.InfluencerCampaignLink{}
	}
	return links, nil
}

func (s *CampaignService) LinkInfluencer(ctx context.Context, campaignID uint, in LinkInfluencerInput) (*models.InfluencerCampaignLink, error) {
	if _, err := s.repo.Get(ctx, campaignID); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = models.LinkStatusInvited
	}
	link := &models.InfluencerCampaignLink{
		CampaignID:   campaignID,
		InfluencerID: in.InfluencerID,
		Status:       status,
		AgreedFee:    in.AgreedFee,
	}
	if err := s.repo.Link(ctx, link); err != nil {
		return nil, err
	}
	s.logger.Info("Influencer linked to campaign",
		zap.Uint("campaign_id", campaignID),
		zap.Uint("influencer_id", in.InfluencerID),
	)
	return link, nil
}

func (s *CampaignService) UpdateLink(ctx context.Context, campaignID, influencerID uint, in UpdateLinkInput) (*models.InfluencerCampaignLink, error) {
	return s.repo.UpdateLink(ctx, campaignID, influencerID, in.Status, in.AgreedFee)
}

func (s *CampaignService) UnlinkInfluencer(ctx context.Context, campaignID, influencerID uint) error {
	return s.repo.Unlink(ctx, campaignID, influencerID)
}

func checkDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return apperrors.BadRequest("endDate must not be before startDate")
	}
	return nil
}
