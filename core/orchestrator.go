package core

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Orchestrator struct {
	logger  *zap.Logger
	workers []Worker
}

func NewOrchestrator(logger *zap.Logger, workers []Worker) *Orchestrator {
	return &Orchestrator{logger: logger, workers: workers}
}

// Start registers every worker on its cron schedule. The returned cron must be
// stopped by the caller; ctx is handed to each execution. Executions run on
// the cron's job goroutine, so the context returned by Stop is done only once
// every running worker has returned.
func (o *Orchestrator) Start(ctx context.Context) (*cron.Cron, error) {
	c := cron.New()

	for _, worker := range o.workers {
		worker := worker
		_, err := c.AddFunc(worker.Schedule(), func() {
			if !worker.Ready(time.Now()) {
				o.logger.Debug("Worker still busy, skipping tick", zap.String("worker", worker.Name()))
				return
			}
			worker.Execute(ctx)
		})

		if err != nil {
			return nil, fmt.Errorf("schedule worker %s: %w", worker.Name(), err)
		}

		o.logger.Info("Worker scheduled",
			zap.String("worker", worker.Name()),
			zap.String("schedule", worker.Schedule()),
		)
	}

	c.Start()
	return c, nil
}
