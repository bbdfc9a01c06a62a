package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/lifecycle"
	"influencer-crm-service/models"
	"influencer-crm-service/repositories"
)

type ShipmentRepository interface {
	Create(ctx context.Context, shipment *models.CourierShipment) error
	Get(ctx context.Context, id uint) (*models.CourierShipment, error)
	Save(ctx context.Context, shipment *models.CourierShipment) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q repositories.ListQuery) ([]models.CourierShipment, int64, error)
	Transition(ctx context.Context, id uint, fn func(*models.CourierShipment) (*models.CourierShipmentEvent, error)) (*models.CourierShipment, error)
	ListTracked(ctx context.Context) ([]models.CourierShipment, error)
	Carrier(ctx context.Context, key string) (*models.Carrier, error)
	Carriers(ctx context.Context) ([]models.Carrier, error)
}

type CreateShipmentInput struct {
	TrackingNumber string     `json:"trackingNumber" validate:"required,max=100"`
	Carrier        string     `json:"carrier" validate:"omitempty,max=50"`
	TrackingURL    string     `json:"trackingUrl" validate:"omitempty,url,max=256"`
	InfluencerID   *uint      `json:"influencerId"`
	CampaignID     *uint      `json:"campaignId"`
	ProductID      *uint      `json:"productId"`
	StoreID        *uint      `json:"storeId"`
	ExpectedAt     *time.Time `json:"expectedAt"`
	Notes          string     `json:"notes"`
}

type UpdateShipmentInput struct {
	TrackingURL  *string    `json:"trackingUrl" validate:"omitempty,url,max=256"`
	InfluencerID *uint      `json:"influencerId"`
	CampaignID   *uint      `json:"campaignId"`
	ProductID    *uint      `json:"productId"`
	StoreID      *uint      `json:"storeId"`
	ExpectedAt   *time.Time `json:"expectedAt"`
	LastLocation *string    `json:"lastLocation" validate:"omitempty,max=100"`
	Notes        *string    `json:"notes"`
}

type ShipmentStatusInput struct {
	Status   models.CourierStatus `json:"status" validate:"required"`
	Notes    string               `json:"notes"`
	Location string               `json:"location" validate:"max=100"`
}

type TimelineEventInput struct {
	Status    models.CourierStatus `json:"status" validate:"required"`
	Timestamp time.Time            `json:"timestamp" validate:"required"`
	Notes     string               `json:"notes"`
	Location  string               `json:"location" validate:"max=100"`
	UserID    *uint                `json:"userId"`
}

// CarrierUpdate is what a tracking processor learned about a shipment.
// An empty Status means the carrier status could not be mapped.
type CarrierUpdate struct {
	Status     models.CourierStatus
	Location   string
	CheckedAt  time.Time
	ExpectedAt *time.Time
	Notes      string
}

type ShipmentService struct {
	logger *zap.Logger
	repo   ShipmentRepository
	guard  *lifecycle.Guard[models.CourierStatus]
	now    func() time.Time
}

func NewShipmentService(logger *zap.Logger, repo ShipmentRepository) *ShipmentService {
	return &ShipmentService{
		logger: logger,
		repo:   repo,
		guard:  lifecycle.CourierGuard(),
		now:    time.Now,
	}
}

func (s *ShipmentService) Create(ctx context.Context, in CreateShipmentInput, actorID *uint) (*models.CourierShipment, error) {
	trackingNumber := strings.TrimSpace(in.TrackingNumber)
	if trackingNumber == "" {
		return nil, apperrors.BadRequest("trackingNumber is required")
	}

	carrierKey := strings.ToLower(strings.TrimSpace(in.Carrier))
	if carrierKey == "" {
		carrierKey = "other"
	}
	carrier, err := s.repo.Carrier(ctx, carrierKey)
	if err != nil {
		return nil, err
	}

	trackingURL := in.TrackingURL
	if trackingURL == "" && carrier.TrackingURLTemplate != "" {
		trackingURL = fmt.Sprintf(carrier.TrackingURLTemplate, trackingNumber)
	}

	now := s.now().UTC()
	shipment := &models.CourierShipment{
		TrackingNumber: trackingNumber,
		Carrier:        carrier.Key,
		TrackingURL:    trackingURL,
		Status:         models.CourierStatusPending,
		InfluencerID:   in.InfluencerID,
		CampaignID:     in.CampaignID,
		ProductID:      in.ProductID,
		StoreID:        in.StoreID,
		ExpectedAt:     in.ExpectedAt,
		Notes:          in.Notes,
		Events: []models.CourierShipmentEvent{{
			Status:    models.CourierStatusPending,
			Timestamp: now,
			Notes:     "Shipment created",
			UserID:    actorID,
		}},
	}

	if err := s.repo.Create(ctx, shipment); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("tracking number %s already exists", trackingNumber)
		}
		return nil, err
	}

	s.logger.Info("Shipment created",
		zap.Uint("shipment_id", shipment.ID),
		zap.String("tracking_number", shipment.TrackingNumber),
		zap.String("carrier", shipment.Carrier),
	)
	return shipment, nil
}

func (s *ShipmentService) Get(ctx context.Context, id uint) (*models.CourierShipment, error) {
	return s.repo.Get(ctx, id)
}

func (s *ShipmentService) List(ctx context.Context, q repositories.ListQuery) (*Page[models.CourierShipment], error) {
	return listPage(ctx, s.repo.List, q)
}

func (s *ShipmentService) Update(ctx context.Context, id uint, in UpdateShipmentInput) (*models.CourierShipment, error) {
	shipment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setString(&shipment.TrackingURL, in.TrackingURL)
	setString(&shipment.LastLocation, in.LastLocation)
	setString(&shipment.Notes, in.Notes)
	if in.InfluencerID != nil {
		shipment.InfluencerID = in.InfluencerID
	}
	if in.CampaignID != nil {
		shipment.CampaignID = in.CampaignID
	}
	if in.ProductID != nil {
		shipment.ProductID = in.ProductID
	}
	if in.StoreID != nil {
		shipment.StoreID = in.StoreID
	}
	if in.ExpectedAt != nil {
		shipment.ExpectedAt = in.ExpectedAt
	}

	if err := s.repo.Save(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *ShipmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Shipment deleted", zap.Uint("shipment_id", id))
	return nil
}

func (s *ShipmentService) Timeline(ctx context.Context, id uint) ([]models.CourierShipmentEvent, error) {
	shipment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return shipment.Events, nil
}

func (s *ShipmentService) Carriers(ctx context.Context) ([]models.Carrier, error) {
	return s.repo.Carriers(ctx)
}

// UpdateStatus is the plain set-status entry point; every request goes
// through the guard, including no-op requests.
func (s *ShipmentService) UpdateStatus(ctx context.Context, id uint, in ShipmentStatusInput, actorID *uint) (*models.CourierShipment, error) {
	if err := validCourierStatus(in.Status); err != nil {
		return nil, err
	}

	var from models.CourierStatus
	shipment, err := s.repo.Transition(ctx, id, func(sh *models.CourierShipment) (*models.CourierShipmentEvent, error) {
		from = sh.Status
		return s.advance(sh, lifecycle.Request[models.CourierStatus]{
			Current:   sh.Status,
			Requested: in.Status,
			Notes:     in.Notes,
			Location:  in.Location,
			ActorID:   actorID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logStatusChange(shipment, from)
	return shipment, nil
}

// RecordEvent appends a timeline event. The event's status is authoritative:
// when it differs from the current status it is validated by the guard,
// otherwise the event is appended as-is.
func (s *ShipmentService) RecordEvent(ctx context.Context, id uint, in TimelineEventInput, actorID *uint) (*models.CourierShipment, error) {
	if err := validCourierStatus(in.Status); err != nil {
		return nil, err
	}
	userID := in.UserID
	if userID == nil {
		userID = actorID
	}

	var from models.CourierStatus
	shipment, err := s.repo.Transition(ctx, id, func(sh *models.CourierShipment) (*models.CourierShipmentEvent, error) {
		from = sh.Status
		if in.Status == sh.Status {
			return &models.CourierShipmentEvent{
				Status:    in.Status,
				Timestamp: in.Timestamp.UTC(),
				Notes:     in.Notes,
				Location:  in.Location,
				UserID:    userID,
			}, nil
		}
		return s.advance(sh, lifecycle.Request[models.CourierStatus]{
			Current:   sh.Status,
			Requested: in.Status,
			Notes:     in.Notes,
			Location:  in.Location,
			ActorID:   userID,
			Timestamp: in.Timestamp,
		})
	})
	if err != nil {
		return nil, err
	}

	if from != shipment.Status {
		s.logStatusChange(shipment, from)
	}
	return shipment, nil
}

// ApplyCarrierUpdate stores tracking details reported by a carrier and
// records a status event when the carrier reports an admissible change.
// It reports whether the status changed.
func (s *ShipmentService) ApplyCarrierUpdate(ctx context.Context, id uint, update CarrierUpdate) (bool, error) {
	var from models.CourierStatus
	shipment, err := s.repo.Transition(ctx, id, func(sh *models.CourierShipment) (*models.CourierShipmentEvent, error) {
		from = sh.Status
		checkedAt := update.CheckedAt.UTC()
		sh.LastCheckedAt = &checkedAt
		if update.Location != "" {
			sh.LastLocation = update.Location
		}
		if update.ExpectedAt != nil {
			expected := update.ExpectedAt.UTC()
			sh.ExpectedAt = &expected
		}

		if update.Status == "" || update.Status == sh.Status {
			return nil, nil
		}

		event, err := s.advance(sh, lifecycle.Request[models.CourierStatus]{
			Current:   sh.Status,
			Requested: update.Status,
			Notes:     update.Notes,
			Location:  update.Location,
			Timestamp: update.CheckedAt,
		})
		if errors.Is(err, apperrors.ErrInvalidTransition) {
			s.logger.Warn("Carrier reported a status the shipment cannot move to",
				zap.Uint("shipment_id", sh.ID),
				zap.String("tracking_number", sh.TrackingNumber),
				zap.String("from_status", string(sh.Status)),
				zap.String("carrier_status", string(update.Status)),
			)
			return nil, nil
		}
		return event, err
	})
	if err != nil {
		return false, err
	}

	changed := from != shipment.Status
	if changed {
		s.logStatusChange(shipment, from)
	}
	return changed, nil
}

// ListTracked returns the shipments the tracking worker should poll.
func (s *ShipmentService) ListTracked(ctx context.Context) ([]models.CourierShipment, error) {
	return s.repo.ListTracked(ctx)
}

func (s *ShipmentService) advance(sh *models.CourierShipment, req lifecycle.Request[models.CourierStatus]) (*models.CourierShipmentEvent, error) {
	entry, err := s.guard.Transition(req)
	if err != nil {
		return nil, apperrors.InvalidTransition(err, "%s", err.Error())
	}
	sh.Status = entry.Status
	return &models.CourierShipmentEvent{
		Status:    entry.Status,
		Timestamp: entry.Timestamp,
		Notes:     entry.Notes,
		Location:  entry.Location,
		UserID:    entry.ActorID,
	}, nil
}

func (s *ShipmentService) logStatusChange(sh *models.CourierShipment, from models.CourierStatus) {
	s.logger.Info("Shipment status changed",
		zap.Uint("shipment_id", sh.ID),
		zap.String("tracking_number", sh.TrackingNumber),
		zap.String("from_status", string(from)),
		zap.String("to_status", string(sh.Status)),
	)
}

func validCourierStatus(status models.CourierStatus) error {
	for _, known := range models.CourierStatuses {
		if status == known {
			return nil
		}
	}
	return apperrors.BadRequest("unknown shipment status %q", status)
}
