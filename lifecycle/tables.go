package lifecycle

import "influencer-crm-service/models"

var CourierTable = Table[models.CourierStatus]{
	models.CourierStatusPending:   {models.CourierStatusSent, models.CourierStatusFailed},
	models.CourierStatusSent:      {models.CourierStatusInTransit, models.CourierStatusFailed, models.CourierStatusDelivered},
	models.CourierStatusInTransit: {models.CourierStatusDelivered, models.CourierStatusReturned, models.CourierStatusFailed},
	models.CourierStatusDelivered: {models.CourierStatusReturned},
	models.CourierStatusReturned:  {},
	models.CourierStatusFailed:    {models.CourierStatusPending},
}

var InvoiceTable = Table[models.InvoiceStatus]{
	models.InvoiceStatusPending:    {models.InvoiceStatusProcessing, models.InvoiceStatusFailed},
	models.InvoiceStatusProcessing: {models.InvoiceStatusProcessed, models.InvoiceStatusFailed},
	models.InvoiceStatusProcessed:  {models.InvoiceStatusPending},
	models.InvoiceStatusFailed:     {models.InvoiceStatusPending},
}

var PayoutTable = Table[models.PayoutStatus]{
	models.PayoutStatusPending:   {models.PayoutStatusApproved, models.PayoutStatusCancelled},
	models.PayoutStatusApproved:  {models.PayoutStatusPaid, models.PayoutStatusCancelled},
	models.PayoutStatusPaid:      {},
	models.PayoutStatusCancelled: {},
}

func CourierGuard() *Guard[models.CourierStatus] {
	return NewGuard("courier shipment", CourierTable)
}

func InvoiceGuard() *Guard[models.InvoiceStatus] {
	return NewGuard("invoice", InvoiceTable)
}

func PayoutGuard() *Guard[models.PayoutStatus] {
	return NewGuard("payout", PayoutTable)
}
