package models

import "time"

type Campaign struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"size:150;not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	Status          CampaignStatus `gorm:"size:20;not null;default:DRAFT" json:"status"`
	StartDate       *time.Time     `json:"startDate"`
	EndDate         *time.Time     `json:"endDate"`
	Budget          float64        `gorm:"not null;default:0" json:"budget"`
	BudgetSpent     float64        `gorm:"not null;default:0" json:"budgetSpent"`
	BudgetAllocated float64        `gorm:"not null;default:0" json:"budgetAllocated"`
	StoreID         *uint          `gorm:"index" json:"storeId"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// InfluencerCampaignLink ties an influencer to a campaign.
type InfluencerCampaignLink struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	InfluencerID uint        `gorm:"not null;uniqueIndex:idx_influencer_campaign" json:"influencerId"`
	CampaignID   uint        `gorm:"not null;uniqueIndex:idx_influencer_campaign;index" json:"campaignId"`
	Status       LinkStatus  `gorm:"size:20;not null;default:INVITED" json:"status"`
	AgreedFee    float64     `gorm:"not null;default:0" json:"agreedFee"`
	Influencer   *Influencer `gorm:"foreignKey:InfluencerID" json:"influencer,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
