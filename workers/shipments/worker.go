package shipments

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"influencer-crm-service/config"
	"influencer-crm-service/metrics"
	"influencer-crm-service/models"
	"influencer-crm-service/services"
	"influencer-crm-service/workers/shipments/processors"
	"influencer-crm-service/workers/shipments/processors/uds"
	"influencer-crm-service/workers/shipments/processors/unsupported"
	"influencer-crm-service/workers/shipments/processors/ups"
)

const (
	name        = "shipment-tracking"
	concurrency = 4
)

type ShipmentUpdater interface {
	ListTracked(ctx context.Context) ([]models.CourierShipment, error)
	ApplyCarrierUpdate(ctx context.Context, id uint, update services.CarrierUpdate) (bool, error)
}

type Recorder interface {
	WorkerRun(worker string, err error, d time.Duration)
	ShipmentChecked(carrier, outcome string)
}

type Worker struct {
	logger     *zap.Logger
	shipments  ShipmentUpdater
	metrics    Recorder
	schedule   string
	processors map[string]processors.CarrierTrackingProcessor
	fallback   processors.CarrierTrackingProcessor
	busy       atomic.Bool
	now        func() time.Time
}

func NewWorker(logger *zap.Logger, cfg *config.Config, shipments ShipmentUpdater, recorder Recorder) *Worker {
	procs := map[string]processors.CarrierTrackingProcessor{
		"uds": uds.NewTrackingProcessor(logger),
	}
	if cfg.UPSApi.Enabled() {
		procs["ups"] = ups.NewTrackingProcessor(logger, cfg.UPSApi)
	} else {
		logger.Warn("UPS credentials missing, UPS shipments will not be tracked")
	}

	return &Worker{
		logger:     logger,
		shipments:  shipments,
		metrics:    recorder,
		schedule:   cfg.TrackingSchedule,
		processors: procs,
		fallback:   unsupported.NewTrackingProcessor(logger),
		now:        time.Now,
	}
}

func (w *Worker) Name() string { return name }

func (w *Worker) Schedule() string { return w.schedule }

func (w *Worker) Ready(time.Time) bool {
	return !w.busy.Load()
}

func (w *Worker) Execute(ctx context.Context) {
	if !w.busy.CompareAndSwap(false, true) {
		return
	}
	defer w.busy.Store(false)

	start := w.now()
	err := w.run(ctx)
	w.metrics.WorkerRun(name, err, w.now().Sub(start))
	if err != nil {
		w.logger.Error("Shipment tracking run failed", zap.Error(err))
	}
}

func (w *Worker) run(ctx context.Context) error {
	w.logger.Info("Starting shipment processing.")

	shipments, err := w.shipments.ListTracked(ctx)
	if err != nil {
		return err
	}

	toProcess := w.getShipmentsToProcess(shipments)
	if len(toProcess) == 0 {
		w.logger.Info("No shipments are ready to be processed. Shipment work completed 😴",
			zap.Int("tracked", len(shipments)),
		)
		return nil
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)
	for _, shipment := range toProcess {
		wg.Add(1)
		sem <- struct{}{}
		go func(sh models.CourierShipment) {
			defer wg.Done()
			defer func() { <-sem }()
			w.processShipment(ctx, sh)
		}(shipment)
	}

	wg.Wait()
	w.logger.Info("Shipment work completed 😴", zap.Int("processed", len(toProcess)))
	return nil
}

func (w *Worker) getShipmentsToProcess(ss []models.CourierShipment) (ret []models.CourierShipment) {
	for _, s := range ss {
		if w.shouldCheck(s) {
			ret = append(ret, s)
		}
	}
	return
}

// shouldCheck polls a shipment every few hours, or more often once the
// expected delivery is close.
func (w *Worker) shouldCheck(shipment models.CourierShipment) bool {
	const (
		recheckInterval = 6 * time.Hour
		soonThreshold   = 2 * time.Hour
		recheckDelay    = 15 * time.Minute
	)

	if !shipment.Status.IsTracked() {
		return false
	}
	if shipment.LastCheckedAt == nil {
		return true
	}

	now := w.now()
	sinceLastCheck := now.Sub(*shipment.LastCheckedAt)
	if sinceLastCheck > recheckInterval {
		return true
	}
	if shipment.ExpectedAt == nil {
		return false
	}

	return shipment.ExpectedAt.Sub(now) < soonThreshold && sinceLastCheck > recheckDelay
}

func (w *Worker) processShipment(ctx context.Context, sh models.CourierShipment) {
	processor := w.getProcessor(sh.Carrier)

	result, err := processor.Process(ctx, sh)
	if err != nil {
		w.metrics.ShipmentChecked(sh.Carrier, metrics.CheckFailed)
		w.logger.Error("Failed to process shipment",
			zap.String("tracking_number", sh.TrackingNumber),
			zap.String("carrier", sh.Carrier),
			zap.Error(err),
		)
		return
	}

	changed, err := w.shipments.ApplyCarrierUpdate(ctx, sh.ID, services.CarrierUpdate{
		Status:     result.Status,
		Location:   result.LastLocation,
		CheckedAt:  result.LastCheckedAt,
		ExpectedAt: result.ExpectedAt,
		Notes:      result.CarrierStatus,
	})
	if err != nil {
		w.metrics.ShipmentChecked(sh.Carrier, metrics.CheckFailed)
		w.logger.Error("Failed to save shipment",
			zap.String("tracking_number", sh.TrackingNumber),
			zap.Error(err),
		)
		return
	}

	switch {
	case result.Unsupported:
		w.metrics.ShipmentChecked(sh.Carrier, metrics.CheckUnsupported)
	case changed:
		w.metrics.ShipmentChecked(sh.Carrier, metrics.CheckChanged)
	default:
		w.metrics.ShipmentChecked(sh.Carrier, metrics.CheckUnchanged)
	}

	w.logger.Info("Shipment successfully processed",
		zap.String("tracking_number", sh.TrackingNumber),
		zap.String("carrier_status", result.CarrierStatus),
		zap.Bool("status_changed", changed),
	)
}

func (w *Worker) getProcessor(carrier string) processors.CarrierTrackingProcessor {
	if processor, ok := w.processors[carrier]; ok {
		return processor
	}
	return w.fallback
}
