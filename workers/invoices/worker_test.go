package invoices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"influencer-crm-service/services"
)

type fakeProcessor struct {
	limits []int
	result services.ProcessResult
	err    error
}

func (f *fakeProcessor) ProcessPending(_ context.Context, limit int) (services.ProcessResult, error) {
	f.limits = append(f.limits, limit)
	return f.result, f.err
}

type fakeRecorder struct {
	runs      []error
	processed int
	failed    int
}

func (r *fakeRecorder) WorkerRun(_ string, err error, _ time.Duration) { r.runs = append(r.runs, err) }

func (r *fakeRecorder) InvoicesProcessed(processed, failed, _ int) {
	r.processed += processed
	r.failed += failed
}

func TestExecuteProcessesOneBatch(t *testing.T) {
	proc := &fakeProcessor{result: services.ProcessResult{Processed: 3, Failed: 1}}
	rec := &fakeRecorder{}
	w := NewWorker(zap.NewNop(), "*/5 * * * *", proc, rec)

	assert.Equal(t, "invoice-ocr", w.Name())
	assert.Equal(t, "*/5 * * * *", w.Schedule())

	w.Execute(context.Background())

	assert.Equal(t, []int{BatchSize}, proc.limits)
	assert.Equal(t, 3, rec.processed)
	assert.Equal(t, 1, rec.failed)
	require.Len(t, rec.runs, 1)
	assert.NoError(t, rec.runs[0])
	assert.True(t, w.Ready(time.Now()))
}

func TestExecuteReportsErrors(t *testing.T) {
	proc := &fakeProcessor{err: errors.New("db down")}
	rec := &fakeRecorder{}
	w := NewWorker(zap.NewNop(), "*/5 * * * *", proc, rec)

	w.Execute(context.Background())
	require.Len(t, rec.runs, 1)
	assert.EqualError(t, rec.runs[0], "db down")
}
