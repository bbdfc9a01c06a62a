package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// InvoiceImage is an uploaded invoice file plus the fields extracted by OCR.
type InvoiceImage struct {
	ID            uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	FileName      string              `gorm:"size:256;not null" json:"fileName"`
	OriginalName  string              `gorm:"size:256" json:"originalName"`
	FilePath      string              `gorm:"size:512;not null" json:"-"`
	MimeType      string              `gorm:"size:100" json:"mimeType"`
	Size          int64               `json:"size"`
	Status        InvoiceStatus       `gorm:"size:20;not null;index" json:"status"`
	InvoiceNumber string              `gorm:"size:100" json:"invoiceNumber"`
	VendorName    string              `gorm:"size:150" json:"vendorName"`
	InvoiceDate   *time.Time          `json:"invoiceDate"`
	TotalAmount   decimal.NullDecimal `gorm:"type:decimal(20,4)" json:"totalAmount"`
	Currency      string              `gorm:"size:10" json:"currency"`
	OCRText       string              `gorm:"column:ocr_text;type:text" json:"ocrText"`
	Confidence    float64             `json:"confidence"`
	ExtractedData datatypes.JSONMap   `gorm:"type:jsonb" json:"extractedData"`
	ErrorMessage  string              `gorm:"type:text" json:"errorMessage,omitempty"`
	InfluencerID  *uint               `gorm:"index" json:"influencerId"`
	CampaignID    *uint               `gorm:"index" json:"campaignId"`
	StoreID       *uint               `gorm:"index" json:"storeId"`
	UploadedBy    *uint               `json:"uploadedBy"`
	ProcessedAt   *time.Time          `json:"processedAt"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}
