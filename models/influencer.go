package models

import "time"

type Influencer struct {
	ID             uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string           `gorm:"size:150;not null" json:"name"`
	Handle         string           `gorm:"size:100;not null;unique" json:"handle"`
	Platform       string           `gorm:"size:50" json:"platform"`
	Email          string           `gorm:"size:150" json:"email"`
	Phone          string           `gorm:"size:50" json:"phone"`
	FollowersCount int64            `json:"followersCount"`
	EngagementRate float64          `json:"engagementRate"`
	Category       string           `gorm:"size:100;index" json:"category"`
	City           string           `gorm:"size:100" json:"city"`
	Status         InfluencerStatus `gorm:"size:20;not null;default:ACTIVE" json:"status"`
	Notes          string           `gorm:"type:text" json:"notes"`
	StoreID        *uint            `gorm:"index" json:"storeId"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
