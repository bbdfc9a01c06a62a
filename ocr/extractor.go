// Package ocr extracts invoice fields from uploaded documents.
package ocr

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Document is a stored upload handed to an Extractor.
type Document struct {
	Path     string
	MimeType string
}

type Result struct {
	Text          string
	InvoiceNumber string
	VendorName    string
	InvoiceDate   *time.Time
	Total         decimal.NullDecimal
	Currency      string
	Confidence    float64
}

// Fields returns the extracted values keyed the way they are persisted in
// the invoice's extracted data column.
func (r *Result) Fields() map[string]any {
	fields := map[string]any{}
	if r.InvoiceNumber != "" {
		fields["invoiceNumber"] = r.InvoiceNumber
	}
	if r.VendorName != "" {
		fields["vendorName"] = r.VendorName
	}
	if r.InvoiceDate != nil {
		fields["invoiceDate"] = r.InvoiceDate.Format("2006-01-02")
	}
	if r.Total.Valid {
		fields["totalAmount"] = r.Total.Decimal.StringFixed(2)
	}
	if r.Currency != "" {
		fields["currency"] = r.Currency
	}
	return fields
}

type Extractor interface {
	Extract(ctx context.Context, doc Document) (*Result, error)
}

// TextExtractor parses plain-text invoices. Images and PDFs have no OCR
// engine behind them and come back empty with zero confidence.
type TextExtractor struct {
	logger   *zap.Logger
	maxBytes int64
}

func NewTextExtractor(logger *zap.Logger, maxBytes int64) *TextExtractor {
	return &TextExtractor{logger: logger, maxBytes: maxBytes}
}

func (e *TextExtractor) Extract(ctx context.Context, doc Document) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(doc.MimeType, "text/") {
		e.logger.Debug("No OCR engine for document type, returning empty result",
			zap.String("mime_type", doc.MimeType),
		)
		return &Result{}, nil
	}

	info, err := os.Stat(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	if e.maxBytes > 0 && info.Size() > e.maxBytes {
		return nil, fmt.Errorf("document is %d bytes, limit is %d", info.Size(), e.maxBytes)
	}

	raw, err := os.ReadFile(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Parse(string(raw)), nil
}
