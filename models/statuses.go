package models

type CourierStatus string

const (
	CourierStatusPending   CourierStatus = "PENDING"
	CourierStatusSent      CourierStatus = "SENT"
	CourierStatusInTransit CourierStatus = "IN_TRANSIT"
	CourierStatusDelivered CourierStatus = "DELIVERED"
	CourierStatusReturned  CourierStatus = "RETURNED"
	CourierStatusFailed    CourierStatus = "FAILED"
)

var CourierStatuses = []CourierStatus{
	CourierStatusPending,
	CourierStatusSent,
	CourierStatusInTransit,
	CourierStatusDelivered,
	CourierStatusReturned,
	CourierStatusFailed,
}

// IsTracked reports whether the carrier should still be polled for this status.
func (s CourierStatus) IsTracked() bool {
	return s == CourierStatusSent || s == CourierStatusInTransit
}

type InvoiceStatus string

const (
	InvoiceStatusPending    InvoiceStatus = "PENDING"
	InvoiceStatusProcessing InvoiceStatus = "PROCESSING"
	InvoiceStatusProcessed  InvoiceStatus = "PROCESSED"
	InvoiceStatusFailed     InvoiceStatus = "FAILED"
)

var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusPending,
	InvoiceStatusProcessing,
	InvoiceStatusProcessed,
	InvoiceStatusFailed,
}

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "PENDING"
	PayoutStatusApproved  PayoutStatus = "APPROVED"
	PayoutStatusPaid      PayoutStatus = "PAID"
	PayoutStatusCancelled PayoutStatus = "CANCELLED"
)

var PayoutStatuses = []PayoutStatus{
	PayoutStatusPending,
	PayoutStatusApproved,
	PayoutStatusPaid,
	PayoutStatusCancelled,
}

type InfluencerStatus string

const (
	InfluencerStatusActive      InfluencerStatus = "ACTIVE"
	InfluencerStatusInactive    InfluencerStatus = "INACTIVE"
	InfluencerStatusBlacklisted InfluencerStatus = "BLACKLISTED"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "DRAFT"
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
	CampaignStatusCancelled CampaignStatus = "CANCELLED"
)

type LinkStatus string

const (
	LinkStatusInvited   LinkStatus = "INVITED"
	LinkStatusAccepted  LinkStatus = "ACCEPTED"
	LinkStatusDeclined  LinkStatus = "DECLINED"
	LinkStatusCompleted LinkStatus = "COMPLETED"
)

type DocumentType string

const (
	DocumentTypeInvoice  DocumentType = "INVOICE"
	DocumentTypeReceipt  DocumentType = "RECEIPT"
	DocumentTypeContract DocumentType = "CONTRACT"
	DocumentTypeOther    DocumentType = "OTHER"
)
