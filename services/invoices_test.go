package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/ocr"
)

func newInvoiceService(extractor ocr.Extractor) (*InvoiceService, *memInvoices, *memFiles) {
	repo := newMemInvoices()
	files := newMemFiles()
	svc := NewInvoiceService(zap.NewNop(), repo, files, extractor, 1<<20)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, files
}

func upload(t *testing.T, svc *InvoiceService, name, mimeType, body string) *models.InvoiceImage {
	t.Helper()
	inv, err := svc.Upload(context.Background(), UploadInvoiceInput{
		OriginalName: name,
		MimeType:     mimeType,
		Size:         int64(len(body)),
		Content:      strings.NewReader(body),
	})
	require.NoError(t, err)
	return inv
}

func TestUploadInvoice(t *testing.T) {
	svc, _, files := newInvoiceService(&stubExtractor{})

	inv := upload(t, svc, "march.txt", "text/plain; charset=utf-8", "Total: 10 USD")
	assert.Equal(t, models.InvoiceStatusPending, inv.Status)
	assert.Equal(t, "text/plain", inv.MimeType)
	assert.Equal(t, "march.txt", inv.OriginalName)
	assert.Equal(t, int64(13), inv.Size)
	assert.Contains(t, files.files, inv.FilePath)

	_, err := svc.Upload(context.Background(), UploadInvoiceInput{
		OriginalName: "x.exe", MimeType: "application/octet-stream", Size: 3, Content: strings.NewReader("abc"),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Upload(context.Background(), UploadInvoiceInput{
		OriginalName: "big.png", MimeType: "image/png", Size: 2 << 20, Content: strings.NewReader("abc"),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestInvoiceStatusTransitions(t *testing.T) {
	svc, _, _ := newInvoiceService(&stubExtractor{})
	ctx := context.Background()
	inv := upload(t, svc, "a.png", "image/png", "png")

	_, err := svc.UpdateStatus(ctx, inv.ID, models.InvoiceStatusProcessed)
	require.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	updated, err := svc.UpdateStatus(ctx, inv.ID, models.InvoiceStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusProcessing, updated.Status)

	updated, err = svc.UpdateStatus(ctx, inv.ID, models.InvoiceStatusProcessed)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusProcessed, updated.Status)

	_, err = svc.UpdateStatus(ctx, inv.ID, models.InvoiceStatusProcessing)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, inv.ID, "ARCHIVED")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestProcessPending(t *testing.T) {
	invoiceDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	extractor := &stubExtractor{result: &ocr.Result{
		Text:          "Invoice No: 42",
		InvoiceNumber: "42",
		InvoiceDate:   &invoiceDate,
		Total:         decimal.NewNullDecimal(decimal.RequireFromString("120.50")),
		Currency:      "USD",
		Confidence:    0.8,
	}}
	svc, repo, _ := newInvoiceService(extractor)
	first := upload(t, svc, "a.txt", "text/plain", "Invoice No: 42")
	second := upload(t, svc, "b.png", "image/png", "png")

	result, err := svc.ProcessPending(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, ProcessResult{Processed: 2}, result)
	require.Len(t, extractor.seen, 2)
	assert.Equal(t, first.FilePath, extractor.seen[0].Path)

	stored := repo.items[first.ID]
	assert.Equal(t, models.InvoiceStatusProcessed, stored.Status)
	assert.Equal(t, "42", stored.InvoiceNumber)
	assert.Equal(t, "120.5", stored.TotalAmount.Decimal.String())
	assert.Equal(t, 0.8, stored.Confidence)
	assert.Equal(t, "120.50", stored.ExtractedData["totalAmount"])
	require.NotNil(t, stored.ProcessedAt)
	assert.Equal(t, fixedNow, *stored.ProcessedAt)
	assert.Equal(t, models.InvoiceStatusProcessed, repo.items[second.ID].Status)

	// nothing left to do
	result, err = svc.ProcessPending(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, ProcessResult{}, result)
}

func TestProcessPendingMarksFailures(t *testing.T) {
	svc, repo, _ := newInvoiceService(&stubExtractor{err: errors.New("unreadable document")})
	inv := upload(t, svc, "a.txt", "text/plain", "???")

	result, err := svc.ProcessPending(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)

	stored := repo.items[inv.ID]
	assert.Equal(t, models.InvoiceStatusFailed, stored.Status)
	assert.Equal(t, "unreadable document", stored.ErrorMessage)

	// FAILED -> PENDING retries and clears the error
	retried, err := svc.UpdateStatus(context.Background(), inv.ID, models.InvoiceStatusPending)
	require.NoError(t, err)
	assert.Empty(t, retried.ErrorMessage)
}

func TestUpdateInvoiceFields(t *testing.T) {
	svc, _, _ := newInvoiceService(&stubExtractor{})
	inv := upload(t, svc, "a.pdf", "application/pdf", "%PDF")

	vendor := "ACME"
	currency := "eur"
	total := decimal.RequireFromString("99.99")
	updated, err := svc.UpdateFields(context.Background(), inv.ID, InvoiceFieldsInput{
		VendorName:  &vendor,
		Currency:    &currency,
		TotalAmount: &total,
	})
	require.NoError(t, err)
	assert.Equal(t, "ACME", updated.VendorName)
	assert.Equal(t, "EUR", updated.Currency)
	assert.True(t, updated.TotalAmount.Valid)

	negative := decimal.RequireFromString("-1")
	_, err = svc.UpdateFields(context.Background(), inv.ID, InvoiceFieldsInput{TotalAmount: &negative})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestDeleteInvoiceRemovesFile(t *testing.T) {
	svc, repo, files := newInvoiceService(&stubExtractor{})
	inv := upload(t, svc, "a.png", "image/png", "png")

	_, rc, err := svc.OpenFile(context.Background(), inv.ID)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	require.NoError(t, svc.Delete(context.Background(), inv.ID))
	assert.NotContains(t, repo.items, inv.ID)
	assert.Equal(t, []string{inv.FilePath}, files.removed)

	err = svc.Delete(context.Background(), inv.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
