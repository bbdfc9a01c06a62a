package processors

import (
	"time"

	"influencer-crm-service/models"
)

type CarrierTrackingResults struct {
	TrackingNumber string
	// Status is empty when the carrier status has no shipment equivalent.
	Status        models.CourierStatus
	CarrierStatus string
	LastLocation  string
	LastCheckedAt time.Time
	ExpectedAt    *time.Time
	Unsupported   bool
}
