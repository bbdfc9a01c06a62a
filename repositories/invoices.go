package repositories

import (
	"context"

	"gorm.io/gorm"

	"influencer-crm-service/models"
)

type InvoiceRepository struct {
	*Store[models.InvoiceImage]
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{Store: NewStore[models.InvoiceImage](db, "invoice", ListSpec{
		SearchColumns: []string{"original_name", "invoice_number", "vendor_name"},
		SortColumns: map[string]string{
			"createdAt":   "created_at",
			"invoiceDate": "invoice_date",
			"status":      "status",
		},
		DefaultSort: "created_at",
		DateColumn:  "created_at",
	})}
}

// Transition locks the invoice row while fn applies a status change.
func (r *InvoiceRepository) Transition(ctx context.Context, id uint, fn func(*models.InvoiceImage) error) (*models.InvoiceImage, error) {
	return r.Mutate(ctx, id, func(_ *gorm.DB, invoice *models.InvoiceImage) error {
		return fn(invoice)
	})
}

// ListByStatus returns the oldest invoices in the given status first.
func (r *InvoiceRepository) ListByStatus(ctx context.Context, status models.InvoiceStatus, limit int) ([]models.InvoiceImage, error) {
	var invoices []models.InvoiceImage
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Find(&invoices).Error
	return invoices, err
}

type PayoutRepository struct {
	*Store[models.Payout]
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{Store: NewPayoutStore(db)}
}

func (r *PayoutRepository) Transition(ctx context.Context, id uint, fn func(*models.Payout) error) (*models.Payout, error) {
	return r.Mutate(ctx, id, func(_ *gorm.DB, payout *models.Payout) error {
		return fn(payout)
	})
}
