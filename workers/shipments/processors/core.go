package processors

import (
	"context"

	"influencer-crm-service/models"
)

// CarrierTrackingProcessor looks a shipment up with its carrier.
type CarrierTrackingProcessor interface {
	Process(ctx context.Context, shipment models.CourierShipment) (*CarrierTrackingResults, error)
}
