package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubWorker struct {
	name     string
	schedule string
	busy     bool
	runs     int
}

func (w *stubWorker) Name() string            { return w.name }
func (w *stubWorker) Schedule() string        { return w.schedule }
func (w *stubWorker) Ready(time.Time) bool    { return !w.busy }
func (w *stubWorker) Execute(context.Context) { w.runs++ }

func TestOrchestratorSchedulesWorkers(t *testing.T) {
	o := NewOrchestrator(zap.NewNop(), []Worker{
		&stubWorker{name: "a", schedule: "*/5 * * * *"},
		&stubWorker{name: "b", schedule: "@hourly"},
	})

	c, err := o.Start(context.Background())
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 2)
}

func TestOrchestratorRejectsBadSchedule(t *testing.T) {
	o := NewOrchestrator(zap.NewNop(), []Worker{
		&stubWorker{name: "broken", schedule: "every now and then"},
	})

	c, err := o.Start(context.Background())
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "broken")
}

func TestOrchestratorJobRunsWorkerToCompletion(t *testing.T) {
	idle := &stubWorker{name: "idle", schedule: "@hourly"}
	busy := &stubWorker{name: "busy", schedule: "@hourly", busy: true}
	o := NewOrchestrator(zap.NewNop(), []Worker{idle, busy})

	c, err := o.Start(context.Background())
	require.NoError(t, err)
	defer c.Stop()

	for _, entry := range c.Entries() {
		entry.Job.Run()
	}

	// the tick returns only after Execute did, so Stop can wait for it
	assert.Equal(t, 1, idle.runs)
	assert.Zero(t, busy.runs)
}
