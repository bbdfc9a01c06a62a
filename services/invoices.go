package services

import (
	"context"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/lifecycle"
	"influencer-crm-service/models"
	"influencer-crm-service/ocr"
	"influencer-crm-service/repositories"
	"influencer-crm-service/storage"
)

// AllowedInvoiceTypes are the upload content types accepted for invoices.
var AllowedInvoiceTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"application/pdf",
	"text/plain",
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.InvoiceImage) error
	Get(ctx context.Context, id uint, preloads ...string) (*models.InvoiceImage, error)
	Save(ctx context.Context, invoice *models.InvoiceImage) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q repositories.ListQuery) ([]models.InvoiceImage, int64, error)
	Transition(ctx context.Context, id uint, fn func(*models.InvoiceImage) error) (*models.InvoiceImage, error)
	ListByStatus(ctx context.Context, status models.InvoiceStatus, limit int) ([]models.InvoiceImage, error)
}

type FileStore interface {
	Save(originalName string, r io.Reader) (storage.File, error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}

type UploadInvoiceInput struct {
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
	InfluencerID *uint
	CampaignID   *uint
	StoreID      *uint
	UploadedBy   *uint
}

type InvoiceStatusInput struct {
	Status models.InvoiceStatus `json:"status" validate:"required"`
}

// InvoiceFieldsInput corrects what OCR extracted.
type InvoiceFieldsInput struct {
	InvoiceNumber *string          `json:"invoiceNumber" validate:"omitempty,max=100"`
	VendorName    *string          `json:"vendorName" validate:"omitempty,max=150"`
	InvoiceDate   *time.Time       `json:"invoiceDate"`
	TotalAmount   *decimal.Decimal `json:"totalAmount"`
	Currency      *string          `json:"currency" validate:"omitempty,len=3"`
	InfluencerID  *uint            `json:"influencerId"`
	CampaignID    *uint            `json:"campaignId"`
	StoreID       *uint            `json:"storeId"`
}

type InvoiceService struct {
	logger    *zap.Logger
	repo      InvoiceRepository
	files     FileStore
	extractor ocr.Extractor
	guard     *lifecycle.Guard[models.InvoiceStatus]
	maxBytes  int64
	now       func() time.Time
}

func NewInvoiceService(logger *zap.Logger, repo InvoiceRepository, files FileStore, extractor ocr.Extractor, maxBytes int64) *InvoiceService {
	return &InvoiceService{
		logger:    logger,
		repo:      repo,
		files:     files,
		extractor: extractor,
		guard:     lifecycle.InvoiceGuard(),
		maxBytes:  maxBytes,
		now:       time.Now,
	}
}

func (s *InvoiceService) Upload(ctx context.Context, in UploadInvoiceInput) (*models.InvoiceImage, error) {
	mimeType, err := allowedInvoiceType(in.MimeType)
	if err != nil {
		return nil, err
	}
	if in.Size <= 0 {
		return nil, apperrors.BadRequest("file is empty")
	}
	if s.maxBytes > 0 && in.Size > s.maxBytes {
		return nil, apperrors.BadRequest("file exceeds the %d MB upload limit", s.maxBytes>>20)
	}

	file, err := s.files.Save(in.OriginalName, in.Content)
	if err != nil {
		return nil, err
	}

	invoice := &models.InvoiceImage{
		FileName:     file.Name,
		OriginalName: in.OriginalName,
		FilePath:     file.Path,
		MimeType:     mimeType,
		Size:         file.Size,
		Status:       models.InvoiceStatusPending,
		InfluencerID: in.InfluencerID,
		CampaignID:   in.CampaignID,
		StoreID:      in.StoreID,
		UploadedBy:   in.UploadedBy,
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		if rmErr := s.files.Remove(file.Path); rmErr != nil {
			s.logger.Warn("Failed to remove orphaned upload", zap.String("file", file.Name), zap.Error(rmErr))
		}
		return nil, err
	}

	s.logger.Info("Invoice uploaded",
		zap.Uint("invoice_id", invoice.ID),
		zap.String("file", invoice.FileName),
		zap.String("mime_type", invoice.MimeType),
		zap.Int64("size", invoice.Size),
	)
	return invoice, nil
}

func (s *InvoiceService) Get(ctx context.Context, id uint) (*models.InvoiceImage, error) {
	return s.repo.Get(ctx, id)
}

func (s *InvoiceService) List(ctx context.Context, q repositories.ListQuery) (*Page[models.InvoiceImage], error) {
	return listPage(ctx, s.repo.List, q)
}

// OpenFile returns the invoice together with a reader over its stored file.
func (s *InvoiceService) OpenFile(ctx context.Context, id uint) (*models.InvoiceImage, io.ReadCloser, error) {
	invoice, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.files.Open(invoice.FilePath)
	if err != nil {
		return nil, nil, apperrors.NotFound("file for invoice %d is missing", id)
	}
	return invoice, rc, nil
}

func (s *InvoiceService) UpdateFields(ctx context.Context, id uint, in InvoiceFieldsInput) (*models.InvoiceImage, error) {
	invoice, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setString(&invoice.InvoiceNumber, in.InvoiceNumber)
	setString(&invoice.VendorName, in.VendorName)
	if in.Currency != nil {
		invoice.Currency = strings.ToUpper(*in.Currency)
	}
	if in.InvoiceDate != nil {
		invoice.InvoiceDate = in.InvoiceDate
	}
	if in.TotalAmount != nil {
		if in.TotalAmount.IsNegative() {
			return nil, apperrors.BadRequest("totalAmount must not be negative")
		}
		invoice.TotalAmount = decimal.NewNullDecimal(*in.TotalAmount)
	}
	if in.InfluencerID != nil {
		invoice.InfluencerID = in.InfluencerID
	}
	if in.CampaignID != nil {
		invoice.CampaignID = in.CampaignID
	}
	if in.StoreID != nil {
		invoice.StoreID = in.StoreID
	}

	if err := s.repo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) UpdateStatus(ctx context.Context, id uint, status models.InvoiceStatus) (*models.InvoiceImage, error) {
	if err := validInvoiceStatus(status); err != nil {
		return nil, err
	}
	return s.transition(ctx, id, status, func(inv *models.InvoiceImage) {
		if status == models.InvoiceStatusPending {
			inv.ErrorMessage = ""
		}
	})
}

// Delete removes the invoice row and then its backing file.
func (s *InvoiceService) Delete(ctx context.Context, id uint) error {
	invoice, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.files.Remove(invoice.FilePath); err != nil {
		s.logger.Error("Invoice deleted but its file could not be removed",
			zap.Uint("invoice_id", id),
			zap.String("file", invoice.FileName),
			zap.Error(err),
		)
		return apperrors.Internal(err, "remove invoice file")
	}
	s.logger.Info("Invoice deleted", zap.Uint("invoice_id", id), zap.String("file", invoice.FileName))
	return nil
}

// ProcessResult summarises one OCR batch.
type ProcessResult struct {
	Processed int
	Failed    int
	Skipped   int
}

// ProcessPending runs OCR over up to limit PENDING invoices, oldest first.
func (s *InvoiceService) ProcessPending(ctx context.Context, limit int) (ProcessResult, error) {
	var result ProcessResult

	pending, err := s.repo.ListByStatus(ctx, models.InvoiceStatusPending, limit)
	if err != nil {
		return result, err
	}

	for _, invoice := range pending {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		claimed, err := s.transition(ctx, invoice.ID, models.InvoiceStatusProcessing, nil)
		if err != nil {
			// Another run may have claimed or removed it.
			s.logger.Debug("Skipping invoice", zap.Uint("invoice_id", invoice.ID), zap.Error(err))
			result.Skipped++
			continue
		}

		extracted, extractErr := s.extractor.Extract(ctx, ocr.Document{Path: claimed.FilePath, MimeType: claimed.MimeType})
		if extractErr != nil {
			s.logger.Warn("OCR failed", zap.Uint("invoice_id", invoice.ID), zap.Error(extractErr))
			if _, err := s.transition(ctx, invoice.ID, models.InvoiceStatusFailed, func(inv *models.InvoiceImage) {
				inv.ErrorMessage = extractErr.Error()
			}); err != nil {
				return result, err
			}
			result.Failed++
			continue
		}

		processedAt := s.now().UTC()
		if _, err := s.transition(ctx, invoice.ID, models.InvoiceStatusProcessed, func(inv *models.InvoiceImage) {
			applyExtraction(inv, extracted)
			inv.ErrorMessage = ""
			inv.ProcessedAt = &processedAt
		}); err != nil {
			return result, err
		}
		result.Processed++
	}

	return result, nil
}

func (s *InvoiceService) transition(ctx context.Context, id uint, to models.InvoiceStatus, apply func(*models.InvoiceImage)) (*models.InvoiceImage, error) {
	var from models.InvoiceStatus
	invoice, err := s.repo.Transition(ctx, id, func(inv *models.InvoiceImage) error {
		from = inv.Status
		entry, err := s.guard.Transition(lifecycle.Request[models.InvoiceStatus]{
			Current:   inv.Status,
			Requested: to,
		})
		if err != nil {
			return apperrors.InvalidTransition(err, "%s", err.Error())
		}
		inv.Status = entry.Status
		if apply != nil {
			apply(inv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Invoice status changed",
		zap.Uint("invoice_id", id),
		zap.String("from_status", string(from)),
		zap.String("to_status", string(invoice.Status)),
	)
	return invoice, nil
}

func applyExtraction(inv *models.InvoiceImage, r *ocr.Result) {
	inv.OCRText = r.Text
	inv.Confidence = r.Confidence
	inv.ExtractedData = r.Fields()
	if r.InvoiceNumber != "" {
		inv.InvoiceNumber = r.InvoiceNumber
	}
	if r.VendorName != "" {
		inv.VendorName = r.VendorName
	}
	if r.InvoiceDate != nil {
		inv.InvoiceDate = r.InvoiceDate
	}
	if r.Total.Valid {
		inv.TotalAmount = r.Total
	}
	if r.Currency != "" {
		inv.Currency = r.Currency
	}
}

func allowedInvoiceType(contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", apperrors.BadRequest("unsupported file type %q", contentType)
	}
	for _, allowed := range AllowedInvoiceTypes {
		if mediaType == allowed {
			return mediaType, nil
		}
	}
	return "", apperrors.BadRequest("unsupported file type %q", mediaType)
}

func validInvoiceStatus(status models.InvoiceStatus) error {
	for _, known := range models.InvoiceStatuses {
		if status == known {
			return nil
		}
	}
	return apperrors.BadRequest("unknown invoice status %q", status)
}
