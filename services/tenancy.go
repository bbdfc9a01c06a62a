package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/repositories"
)

type FirmInput struct {
	Name         string `json:"name" validate:"required,max=150"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email,max=150"`
}

type UpdateFirmInput struct {
	Name         *string `json:"name" validate:"omitempty,max=150"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email,max=150"`
}

type StoreInput struct {
	Name    string `json:"name" validate:"required,max=150"`
	City    string `json:"city" validate:"max=100"`
	Address string `json:"address" validate:"max=256"`
}

type UpdateStoreInput struct {
	Name    *string `json:"name" validate:"omitempty,max=150"`
	City    *string `json:"city" validate:"omitempty,max=100"`
	Address *string `json:"address" validate:"omitempty,max=256"`
}

// TenancyService manages firms and the stores they own.
type TenancyService struct {
	logger *zap.Logger
	firms  Repo[models.Firm]
	stores Repo[models.Store]
}

func NewTenancyService(logger *zap.Logger, firms Repo[models.Firm], stores Repo[models.Store]) *TenancyService {
	return &TenancyService{logger: logger, firms: firms, stores: stores}
}

func (s *TenancyService) CreateFirm(ctx context.Context, in FirmInput) (*models.Firm, error) {
	firm := &models.Firm{Name: in.Name, ContactEmail: in.ContactEmail}
	if err := s.firms.Create(ctx, firm); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("firm %s already exists", in.Name)
		}
		return nil, err
	}
	s.logger.Info("Firm created", zap.Uint("firm_id", firm.ID), zap.String("name", firm.Name))
	return firm, nil
}

func (s *TenancyService) Firm(ctx context.Context, id uint) (*models.Firm, error) {
	return s.firms.Get(ctx, id, "Stores")
}

func (s *TenancyService) Firms(ctx context.Context, q repositories.ListQuery) (*Page[models.Firm], error) {
	return listPage(ctx, s.firms.List, q)
}

func (s *TenancyService) UpdateFirm(ctx context.Context, id uint, in UpdateFirmInput) (*models.Firm, error) {
	firm, err := s.firms.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	setString(&firm.Name, in.Name)
	setString(&firm.ContactEmail, in.ContactEmail)
	if err := s.firms.Save(ctx, firm); err != nil {
		return nil, err
	}
	return firm, nil
}

func (s *TenancyService) DeleteFirm(ctx context.Context, id uint) error {
	return s.firms.Delete(ctx, id)
}

func (s *TenancyService) CreateStore(ctx context.Context, firmID uint, in StoreInput) (*models.Store, error) {
	if _, err := s.firms.Get(ctx, firmID); err != nil {
		return nil, err
	}
	store := &models.Store{FirmID: firmID, Name: in.Name, City: in.City, Address: in.Address}
	if err := s.stores.Create(ctx, store); err != nil {
		return nil, err
	}
	s.logger.Info("Store created", zap.Uint("firm_id", firmID), zap.Uint("store_id", store.ID))
	return store, nil
}

func (s *TenancyService) Store(ctx context.Context, id uint) (*models.Store, error) {
	return s.stores.Get(ctx, id)
}

// Stores lists stores, restricted to one firm when firmID is set.
func (s *TenancyService) Stores(ctx context.Context, firmID *uint, q repositories.ListQuery) (*Page[models.Store], error) {
	if firmID != nil {
		if q.Filters == nil {
			q.Filters = map[string]any{}
		}
		q.Filters["firm_id"] = *firmID
	}
	return listPage(ctx, s.stores.List, q)
}

func (s *TenancyService) UpdateStore(ctx context.Context, id uint, in UpdateStoreInput) (*models.Store, error) {
	store, err := s.stores.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	setString(&store.Name, in.Name)
	setString(&store.City, in.City)
	setString(&store.Address, in.Address)
	if err := s.stores.Save(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *TenancyService) DeleteStore(ctx context.Context, id uint) error {
	return s.stores.Delete(ctx, id)
}
