package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payout struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	InfluencerID   uint            `gorm:"not null;index" json:"influencerId"`
	CampaignID     *uint           `gorm:"index" json:"campaignId"`
	InvoiceImageID *uint           `json:"invoiceImageId"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	Currency       string          `gorm:"size:10;not null;default:USD" json:"currency"`
	Status         PayoutStatus    `gorm:"size:20;not null;index" json:"status"`
	Reference      string          `gorm:"size:100" json:"reference"`
	Notes          string          `gorm:"type:text" json:"notes"`
	PaidAt         *time.Time      `json:"paidAt"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type FinancialDocument struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Type         DocumentType    `gorm:"size:20;not null;index" json:"type"`
	Title        string          `gorm:"size:150;not null" json:"title"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"amount"`
	Currency     string          `gorm:"size:10;not null;default:USD" json:"currency"`
	DocumentDate *time.Time      `json:"documentDate"`
	Reference    string          `gorm:"size:100" json:"reference"`
	Notes        string          `gorm:"type:text" json:"notes"`
	InfluencerID *uint           `gorm:"index" json:"influencerId"`
	CampaignID   *uint           `gorm:"index" json:"campaignId"`
	StoreID      *uint           `gorm:"index" json:"storeId"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
