package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/lifecycle"
	"influencer-crm-service/models"
	"influencer-crm-service/repositories"
)

type PayoutRepository interface {
	Repo[models.Payout]
	Transition(ctx context.Context, id uint, fn func(*models.Payout) error) (*models.Payout, error)
}

type CreatePayoutInput struct {
	InfluencerID   uint            `json:"influencerId" validate:"required"`
	CampaignID     *uint           `json:"campaignId"`
	InvoiceImageID *uint           `json:"invoiceImageId"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency" validate:"omitempty,len=3"`
	Reference      string          `json:"reference" validate:"max=100"`
	Notes          string          `json:"notes"`
}

type UpdatePayoutInput struct {
	CampaignID     *uint            `json:"campaignId"`
	InvoiceImageID *uint            `json:"invoiceImageId"`
	Amount         *decimal.Decimal `json:"amount"`
	Currency       *string          `json:"currency" validate:"omitempty,len=3"`
	Reference      *string          `json:"reference" validate:"omitempty,max=100"`
	Notes          *string          `json:"notes"`
}

type PayoutStatusInput struct {
	Status models.PayoutStatus `json:"status" validate:"required"`
	Notes  string              `json:"notes"`
}

type PayoutService struct {
	logger *zap.Logger
	repo   PayoutRepository
	guard  *lifecycle.Guard[models.PayoutStatus]
	now    func() time.Time
}

func NewPayoutService(logger *zap.Logger, repo PayoutRepository) *PayoutService {
	return &PayoutService{logger: logger, repo: repo, guard: lifecycle.PayoutGuard(), now: time.Now}
}

func (s *PayoutService) Create(ctx context.Context, in CreatePayoutInput) (*models.Payout, error) {
	if !in.Amount.IsPositive() {
		return nil, apperrors.BadRequest("amount must be greater than zero")
	}
	payout := &models.Payout{
		InfluencerID:   in.InfluencerID,
		CampaignID:     in.CampaignID,
		InvoiceImageID: in.InvoiceImageID,
		Amount:         in.Amount,
		Currency:       currencyOrDefault(in.Currency),
		Status:         models.PayoutStatusPending,
		Reference:      in.Reference,
		Notes:          in.Notes,
	}
	if err := s.repo.Create(ctx, payout); err != nil {
		return nil, err
	}
	s.logger.Info("Payout created",
		zap.Uint("payout_id", payout.ID),
		zap.Uint("influencer_id", payout.InfluencerID),
		zap.String("amount", payout.Amount.String()),
	)
	return payout, nil
}

func (s *PayoutService) Get(ctx context.Context, id uint) (*models.Payout, error) {
	return s.repo.Get(ctx, id)
}

func (s *PayoutService) List(ctx context.Context, q repositories.ListQuery) (*Page[models.Payout], error) {
	return listPage(ctx, s.repo.List, q)
}

// Update edits a payout that has not been approved yet.
func (s *PayoutService) Update(ctx context.Context, id uint, in UpdatePayoutInput) (*models.Payout, error) {
	payout, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if payout.Status != models.PayoutStatusPending {
		return nil, apperrors.BadRequest("payout %d is %s and can no longer be edited", id, payout.Status)
	}

	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, apperrors.BadRequest("amount must be greater than zero")
		}
		payout.Amount = *in.Amount
	}
	if in.Currency != nil {
		payout.Currency = currencyOrDefault(*in.Currency)
	}
	if in.CampaignID != nil {
		payout.CampaignID = in.CampaignID
	}
	if in.InvoiceImageID != nil {
		payout.InvoiceImageID = in.InvoiceImageID
	}
	setString(&payout.Reference, in.Reference)
	setString(&payout.Notes, in.Notes)

	if err := s.repo.Save(ctx, payout); err != nil {
		return nil, err
	}
	return payout, nil
}

func (s *PayoutService) UpdateStatus(ctx context.Context, id uint, in PayoutStatusInput) (*models.Payout, error) {
	if !validPayoutStatus(in.Status) {
		return nil, apperrors.BadRequest("unknown payout status %q", in.Status)
	}

	var from models.PayoutStatus
	payout, err := s.repo.Transition(ctx, id, func(p *models.Payout) error {
		from = p.Status
		entry, err := s.guard.Transition(lifecycle.Request[models.PayoutStatus]{
			Current:   p.Status,
			Requested: in.Status,
			Notes:     in.Notes,
			Timestamp: s.now(),
		})
		if err != nil {
			return apperrors.InvalidTransition(err, "%s", err.Error())
		}
		p.Status = entry.Status
		if entry.Status == models.PayoutStatusPaid {
			paidAt := entry.Timestamp
			p.PaidAt = &paidAt
		}
		if entry.Notes != "" {
			p.Notes = entry.Notes
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payout status changed",
		zap.Uint("payout_id", id),
		zap.String("from_status", string(from)),
		zap.String("to_status", string(payout.Status)),
	)
	return payout, nil
}

// Delete removes a payout unless it has already been paid.
func (s *PayoutService) Delete(ctx context.Context, id uint) error {
	payout, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if payout.Status == models.PayoutStatusPaid {
		return apperrors.BadRequest("paid payouts cannot be deleted")
	}
	return s.repo.Delete(ctx, id)
}

func validPayoutStatus(status models.PayoutStatus) bool {
	for _, known := range models.PayoutStatuses {
		if status == known {
			return true
		}
	}
	return false
}

func currencyOrDefault(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "USD"
	}
	return code
}
