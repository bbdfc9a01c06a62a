package models

import "time"

type MetricType string

const (
	MetricReach               MetricType = "REACH"
	MetricEngagement          MetricType = "ENGAGEMENT"
	MetricROI                 MetricType = "ROI"
	MetricFollowers           MetricType = "FOLLOWERS"
	MetricLikes               MetricType = "LIKES"
	MetricComments            MetricType = "COMMENTS"
	MetricShares              MetricType = "SHARES"
	MetricConversions         MetricType = "CONVERSIONS"
	MetricInstagramLinkClicks MetricType = "INSTAGRAM_LINK_CLICKS"
)

var MetricTypes = []MetricType{
	MetricReach,
	MetricEngagement,
	MetricROI,
	MetricFollowers,
	MetricLikes,
	MetricComments,
	MetricShares,
	MetricConversions,
	MetricInstagramLinkClicks,
}

func (t MetricType) Valid() bool {
	for _, known := range MetricTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PerformanceMetric rows are immutable once written.
type PerformanceMetric struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	MetricType   MetricType `gorm:"size:40;not null;index" json:"metricType"`
	Value        float64    `gorm:"not null" json:"value"`
	InfluencerID *uint      `gorm:"index" json:"influencerId"`
	CampaignID   *uint      `gorm:"index" json:"campaignId"`
	StoreID      *uint      `gorm:"index" json:"storeId"`
	RecordedAt   time.Time  `gorm:"not null;index" json:"recordedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// All lists every model managed by migrations.
func All() []any {
	return []any{
		&Firm{},
		&Store{},
		&User{},
		&Carrier{},
		&Influencer{},
		&Campaign{},
		&InfluencerCampaignLink{},
		&Product{},
		&CourierShipment{},
		&CourierShipmentEvent{},
		&InvoiceImage{},
		&Payout{},
		&FinancialDocument{},
		&PerformanceMetric{},
	}
}
