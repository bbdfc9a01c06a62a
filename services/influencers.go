package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/repositories"
)

type InfluencerInput struct {
	Name           string                  `json:"name" validate:"required,max=150"`
	Handle         string                  `json:"handle" validate:"required,max=100"`
	Platform       string                  `json:"platform" validate:"max=50"`
	Email          string                  `json:"email" validate:"omitempty,email,max=150"`
	Phone          string                  `json:"phone" validate:"max=50"`
	FollowersCount int64                   `json:"followersCount" validate:"gte=0"`
	EngagementRate float64                 `json:"engagementRate" validate:"gte=0,lte=100"`
	Category       string                  `json:"category" validate:"max=100"`
	City           string                  `json:"city" validate:"max=100"`
	Status         models.InfluencerStatus `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE BLACKLISTED"`
	Notes          string                  `json:"notes"`
	StoreID        *uint                   `json:"storeId"`
}

type UpdateInfluencerInput struct {
	Name           *string                  `json:"name" validate:"omitempty,max=150"`
	Handle         *string                  `json:"handle" validate:"omitempty,max=100"`
	Platform       *string                  `json:"platform" validate:"omitempty,max=50"`
	Email          *string                  `json:"email" validate:"omitempty,email,max=150"`
	Phone          *string                  `json:"phone" validate:"omitempty,max=50"`
	FollowersCount *int64                   `json:"followersCount" validate:"omitempty,gte=0"`
	EngagementRate *float64                 `json:"engagementRate" validate:"omitempty,gte=0,lte=100"`
	Category       *string                  `json:"category" validate:"omitempty,max=100"`
	City           *string                  `json:"city" validate:"omitempty,max=100"`
	Status         *models.InfluencerStatus `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE BLACKLISTED"`
	Notes          *string                  `json:"notes"`
	StoreID        *uint                    `json:"storeId"`
}

type InfluencerService struct {
	logger *zap.Logger
	repo   Repo[models.Influencer]
}

func NewInfluencerService(logger *zap.Logger, repo Repo[models.Influencer]) *InfluencerService {
	return &InfluencerService{logger: logger, repo: repo}
}

func (s *InfluencerService) Create(ctx context.Context, in InfluencerInput) (*models.Influencer, error) {
	handle := NormalizeHandle(in.Handle)
	if handle == "" {
		return nil, apperrors.BadRequest("handle is required")
	}
	status := in.Status
	if status == "" {
		status = models.InfluencerStatusActive
	}

	influencer := &models.Influencer{
		Name:           strings.TrimSpace(in.Name),
		Handle:         handle,
		Platform:       in.Platform,
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:          in.Phone,
		FollowersCount: in.FollowersCount,
		EngagementRate: in.EngagementRate,
		Category:       in.Category,
		City:           in.City,
		Status:         status,
		Notes:          in.Notes,
		StoreID:        in.StoreID,
	}
	if err := s.repo.Create(ctx, influencer); err != nil {
		return nil, handleConflict(err, handle)
	}
	s.logger.Debug("Influencer created", zap.Uint("influencer_id", influencer.ID), zap.String("handle", handle))
	return influencer, nil
}

func (s *InfluencerService) Get(ctx context.Context, id uint) (*models.Influencer, error) {
	return s.repo.Get(ctx, id)
}

func (s *InfluencerService) List(ctx context.Context, q repositories.ListQuery) (*Page[models.Influencer], error) {
	return listPage(ctx, s.repo.List, q)
}

func (s *InfluencerService) Update(ctx context.Context, id uint, in UpdateInfluencerInput) (*models.Influencer, error) {
	influencer, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setString(&influencer.Name, in.Name)
	setString(&influencer.Platform, in.Platform)
	setString(&influencer.Email, in.Email)
	setString(&influencer.Phone, in.Phone)
	setString(&influencer.Category, in.Category)
	setString(&influencer.City, in.City)
	setString(&influencer.Notes, in.Notes)
	if in.Handle != nil {
		influencer.Handle = NormalizeHandle(*in.Handle)
		if influencer.Handle == "" {
			return nil, apperrors.BadRequest("handle must not be empty")
		}
	}
	if in.FollowersCount != nil {
		influencer.FollowersCount = *in.FollowersCount
	}
	if in.EngagementRate != nil {
		influencer.EngagementRate = *in.EngagementRate
	}
	if in.Status != nil {
		influencer.Status = *in.Status
	}
	if in.StoreID != nil {
		influencer.StoreID = in.StoreID
	}

	if err := s.repo.Save(ctx, influencer); err != nil {
		return nil, handleConflict(err, influencer.Handle)
	}
	return influencer, nil
}

func (s *InfluencerService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// NormalizeHandle trims whitespace and a leading @ and lowercases the handle.
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}

func handleConflict(err error, handle string) error {
	if errors.Is(err, apperrors.ErrConflict) {
		return apperrors.Conflict("influencer handle %s already exists", handle)
	}
	return err
}
