package models

import "time"

type CourierShipment struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingNumber string        `gorm:"size:100;not null;unique" json:"trackingNumber"`
	Carrier        string        `gorm:"size:50;not null;default:other;index" json:"carrier"`
	TrackingURL    string        `gorm:"size:256" json:"trackingUrl"`
	Status         CourierStatus `gorm:"size:20;not null;index" json:"status"`
	LastLocation   string        `gorm:"size:100" json:"lastLocation"`
	LastCheckedAt  *time.Time    `json:"lastCheckedAt"`
	ExpectedAt     *time.Time    `json:"expectedAt"`
	Notes          string        `gorm:"type:text" json:"notes"`

	// Foreign keys
	InfluencerID *uint `gorm:"index" json:"influencerId"`
	CampaignID   *uint `gorm:"index" json:"campaignId"`
	ProductID    *uint `json:"productId"`
	StoreID      *uint `gorm:"index" json:"storeId"`

	// Timeline is append-only; the last entry always carries Status.
	Events []CourierShipmentEvent `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE" json:"statusTimeline"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CourierShipmentEvent struct {
	ID         uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	ShipmentID uint          `gorm:"not null;index" json:"-"`
	Status     CourierStatus `gorm:"size:20;not null" json:"status"`
	Timestamp  time.Time     `gorm:"not null" json:"timestamp"`
	Notes      string        `gorm:"type:text" json:"notes,omitempty"`
	Location   string        `gorm:"size:100" json:"location,omitempty"`
	UserID     *uint         `json:"userId,omitempty"`
}
