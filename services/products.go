package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/repositories"
)

type ProductInput struct {
	Name        string          `json:"name" validate:"required,max=150"`
	SKU         string          `json:"sku" validate:"required,max=64"`
	Description string          `json:"description"`
	Category    string          `json:"category" validate:"max=100"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	StoreID     *uint           `json:"storeId"`
}

type UpdateProductInput struct {
	Name        *string          `json:"name" validate:"omitempty,max=150"`
	SKU         *string          `json:"sku" validate:"omitempty,max=64"`
	Description *string          `json:"description"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	StoreID     *uint            `json:"storeId"`
}

type ProductService struct {
	logger *zap.Logger
	repo   Repo[models.Product]
}

func NewProductService(logger *zap.Logger, repo Repo[models.Product]) *ProductService {
	return &ProductService{logger: logger, repo: repo}
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if in.Price.IsNegative() {
		return nil, apperrors.BadRequest("price must not be negative")
	}
	product := &models.Product{
		Name:        in.Name,
		SKU:         strings.ToUpper(strings.TrimSpace(in.SKU)),
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		StoreID:     in.StoreID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, skuConflict(err, product.SKU)
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *ProductService) List(ctx context.Context, q repositories.ListQuery) (*Page[models.Product], error) {
	return listPage(ctx, s.repo.List, q)
}

func (s *ProductService) Update(ctx context.Context, id uint, in UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setString(&product.Name, in.Name)
	setString(&product.Description, in.Description)
	setString(&product.Category, in.Category)
	if in.SKU != nil {
		product.SKU = strings.ToUpper(strings.TrimSpace(*in.SKU))
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, apperrors.BadRequest("price must not be negative")
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.StoreID != nil {
		product.StoreID = in.StoreID
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, skuConflict(err, product.SKU)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func skuConflict(err error, sku string) error {
	if errors.Is(err, apperrors.ErrConflict) {
		return apperrors.Conflict("product sku %s already exists", sku)
	}
	return err
}

type FinancialDocumentInput struct {
	Type         models.DocumentType `json:"type" validate:"required,oneof=INVOICE RECEIPT CONTRACT OTHER"`
	Title        string              `json:"title" validate:"required,max=150"`
	Amount       decimal.Decimal     `json:"amount"`
	Currency     string              `json:"currency" validate:"omitempty,len=3"`
	DocumentDate *time.Time          `json:"documentDate"`
	Reference    string              `json:"reference" validate:"max=100"`
	Notes        string              `json:"notes"`
	InfluencerID *uint               `json:"influencerId"`
	CampaignID   *uint               `json:"campaignId"`
	StoreID      *uint               `json:"storeId"`
}

type UpdateFinancialDocumentInput struct {
	Type         *models.DocumentType `json:"type" validate:"omitempty,oneof=INVOICE RECEIPT CONTRACT OTHER"`
	Title        *string              `json:"title" validate:"omitempty,max=150"`
	Amount       *decimal.Decimal     `json:"amount"`
	Currency     *string              `json:"currency" validate:"omitempty,len=3"`
	DocumentDate *time.Time           `json:"documentDate"`
	Reference    *string              `json:"reference" validate:"omitempty,max=100"`
	Notes        *string              `json:"notes"`
	InfluencerID *uint                `json:"influencerId"`
	CampaignID   *uint                `json:"campaignId"`
	StoreID      *uint                `json:"storeId"`
}

type FinancialDocumentService struct {
	logger *zap.Logger
	repo   Repo[models.FinancialDocument]
}

func NewFinancialDocumentService(logger *zap.Logger, repo Repo[models.FinancialDocument]) *FinancialDocumentService {
	return &FinancialDocumentService{logger: logger, repo: repo}
}

func (s *FinancialDocumentService) Create(ctx context.Context, in FinancialDocumentInput) (*models.FinancialDocument, error) {
	doc := &models.FinancialDocument{
		Type:         in.Type,
		Title:        in.Title,
		Amount:       in.Amount,
		Currency:     currencyOrDefault(in.Currency),
		DocumentDate: in.DocumentDate,
		Reference:    in.Reference,
		Notes:        in.Notes,
		InfluencerID: in.InfluencerID,
		CampaignID:   in.CampaignID,
		StoreID:      in.StoreID,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *FinancialDocumentService) Get(ctx context.Context, id uint) (*models.FinancialDocument, error) {
	return s.repo.Get(ctx, id)
}

func (s *FinancialDocumentService) List(ctx context.Context, q repositories.ListQuery) (*Page[models.FinancialDocument], error) {
	return listPage(ctx, s.repo.List, q)
}

func (s *FinancialDocumentService) Update(ctx context.Context, id uint, in UpdateFinancialDocumentInput) (*models.FinancialDocument, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Type != nil {
		doc.Type = *in.Type
	}
	setString(&doc.Title, in.Title)
	setString(&doc.Reference, in.Reference)
	setString(&doc.Notes, in.Notes)
	if in.Amount != nil {
		doc.Amount = *in.Amount
	}
	if in.Currency != nil {
		doc.Currency = currencyOrDefault(*in.Currency)
	}
	if in.DocumentDate != nil {
		doc.DocumentDate = in.DocumentDate
	}
	if in.InfluencerID != nil {
		doc.InfluencerID = in.InfluencerID
	}
	if in.CampaignID != nil {
		doc.CampaignID = in.CampaignID
	}
	if in.StoreID != nil {
		doc.StoreID = in.StoreID
	}

	if err := s.repo.Save(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *FinancialDocumentService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
