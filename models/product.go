package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:150;not null" json:"name"`
	SKU         string          `gorm:"column:sku;size:64;not null;unique" json:"sku"`
	Description string          `gorm:"type:text" json:"description"`
	Category    string          `gorm:"size:100;index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	StoreID     *uint           `gorm:"index" json:"storeId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
