// Package invoices runs OCR over uploaded invoices in the background.
package invoices

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"influencer-crm-service/services"
)

const (
	name      = "invoice-ocr"
	BatchSize = 20
)

type Processor interface {
	ProcessPending(ctx context.Context, limit int) (services.ProcessResult, error)
}

type Recorder interface {
	WorkerRun(worker string, err error, d time.Duration)
	InvoicesProcessed(processed, failed, skipped int)
}

type Worker struct {
	logger   *zap.Logger
	invoices Processor
	metrics  Recorder
	schedule string
	busy     atomic.Bool
	now      func() time.Time
}

func NewWorker(logger *zap.Logger, schedule string, invoices Processor, recorder Recorder) *Worker {
	return &Worker{
		logger:   logger,
		invoices: invoices,
		metrics:  recorder,
		schedule: schedule,
		now:      time.Now,
	}
}

func (w *Worker) Name() string { return name }

func (w *Worker) Schedule() string { return w.schedule }

func (w *Worker) Ready(time.Time) bool { return !w.busy.Load() }

func (w *Worker) Execute(ctx context.Context) {
	if !w.busy.CompareAndSwap(false, true) {
		return
	}
	defer w.busy.Store(false)

	start := w.now()
	result, err := w.invoices.ProcessPending(ctx, BatchSize)
	w.metrics.InvoicesProcessed(result.Processed, result.Failed, result.Skipped)
	w.metrics.WorkerRun(name, err, w.now().Sub(start))

	if err != nil {
		w.logger.Error("Invoice OCR run failed", zap.Error(err))
		return
	}
	if result == (services.ProcessResult{}) {
		w.logger.Debug("No pending invoices")
		return
	}
	w.logger.Info("Invoice OCR run completed",
		zap.Int("processed", result.Processed),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped),
	)
}
