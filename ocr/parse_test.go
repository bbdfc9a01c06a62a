package ocr

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleInvoice = `ACME Studio
Vendor: ACME Studio LLC
Invoice No: inv-2024/117
Invoice Date: 2024-03-15

Content package (3 reels)    1,200.00
Total Due: $1,250.50
`

func TestParseFindsAllFields(t *testing.T) {
	result := Parse(sampleInvoice)

	assert.Equal(t, "INV-2024/117", result.InvoiceNumber)
	assert.Equal(t, "ACME Studio LLC", result.VendorName)
	require.NotNil(t, result.InvoiceDate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *result.InvoiceDate)
	require.True(t, result.Total.Valid)
	assert.Equal(t, "1250.5", result.Total.Decimal.String())
	assert.Equal(t, "USD", result.Currency)
	assert.Equal(t, 1.0, result.Confidence)

	fields := result.Fields()
	assert.Equal(t, "1250.50", fields["totalAmount"])
	assert.Equal(t, "2024-03-15", fields["invoiceDate"])
}

func TestParseTrailingCurrencyCode(t *testing.T) {
	result := Parse("Total: 99.90 EUR")

	require.True(t, result.Total.Valid)
	assert.Equal(t, "99.9", result.Total.Decimal.String())
	assert.Equal(t, "EUR", result.Currency)
	assert.InDelta(t, 0.4, result.Confidence, 1e-9)
}

func TestParseIgnoresSubtotals(t *testing.T) {
	result := Parse("Invoice No: A-1\nSubtotal: 100.00\nTax: 20.00\nTotal: 120.00 EUR\n")

	require.True(t, result.Total.Valid)
	assert.Equal(t, "120", result.Total.Decimal.String())
	assert.Equal(t, "EUR", result.Currency)
}

func TestParsePrefersLastTotalLine(t *testing.T) {
	result := Parse("Total: 80.00\nShipping: 5.00\nGrand Total: GBP 85.00\n")

	require.True(t, result.Total.Valid)
	assert.Equal(t, "85", result.Total.Decimal.String())
	assert.Equal(t, "GBP", result.Currency)
}

func TestParseRejectsWordsAsCurrency(t *testing.T) {
	result := Parse("Total 50 and change")

	require.True(t, result.Total.Valid)
	assert.Equal(t, "50", result.Total.Decimal.String())
	assert.Empty(t, result.Currency)
}

func TestParseNothingRecognised(t *testing.T) {
	result := Parse("thanks for your business")

	assert.Empty(t, result.InvoiceNumber)
	assert.False(t, result.Total.Valid)
	assert.Zero(t, result.Confidence)
	assert.Empty(t, result.Fields())
}

func TestTextExtractor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleInvoice), 0o644))

	extractor := NewTextExtractor(zap.NewNop(), 1<<20)

	result, err := extractor.Extract(context.Background(), Document{Path: path, MimeType: "text/plain; charset=utf-8"})
	require.NoError(t, err)
	assert.Equal(t, "INV-2024/117", result.InvoiceNumber)

	image, err := extractor.Extract(context.Background(), Document{Path: path, MimeType: "image/png"})
	require.NoError(t, err)
	assert.Zero(t, image.Confidence)
	assert.Empty(t, image.Text)

	_, err = extractor.Extract(context.Background(), Document{Path: filepath.Join(dir, "missing.txt"), MimeType: "text/plain"})
	assert.Error(t, err)
}

func TestTextExtractorRespectsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleInvoice), 0o644))

	_, err := NewTextExtractor(zap.NewNop(), 10).Extract(context.Background(), Document{Path: path, MimeType: "text/plain"})
	assert.Error(t, err)
}
