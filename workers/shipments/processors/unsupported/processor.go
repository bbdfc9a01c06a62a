package unsupported

import (
	"context"
	"time"

	"go.uber.org/zap"

	"influencer-crm-service/models"
	"influencer-crm-service/workers/shipments/processors"
)

// TrackingProcessor handles carriers without an integration. It only stamps
// the check time so the shipment is not polled again immediately.
type TrackingProcessor struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewTrackingProcessor(logger *zap.Logger) *TrackingProcessor {
	return &TrackingProcessor{logger: logger, now: time.Now}
}

func (p *TrackingProcessor) Process(_ context.Context, shipment models.CourierShipment) (*processors.CarrierTrackingResults, error) {
	p.logger.Debug("No tracking integration for carrier",
		zap.String("tracking_number", shipment.TrackingNumber),
		zap.String("carrier", shipment.Carrier),
	)
	return &processors.CarrierTrackingResults{
		TrackingNumber: shipment.TrackingNumber,
		LastCheckedAt:  p.now(),
		Unsupported:    true,
	}, nil
}
