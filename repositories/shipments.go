package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
)

var shipmentSpec = ListSpec{
	SearchColumns: []string{"tracking_number", "last_location"},
	SortColumns: map[string]string{
		"createdAt":      "created_at",
		"updatedAt":      "updated_at",
		"status":         "status",
		"trackingNumber": "tracking_number",
	},
	DefaultSort: "created_at",
	DateColumn:  "created_at",
}

type ShipmentRepository struct {
	*Store[models.CourierShipment]
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{Store: NewStore[models.CourierShipment](db, "courier shipment", shipmentSpec)}
}

// orderedEvents loads the timeline in append order. Timestamps are caller
// supplied and may be backdated, so they do not decide the order.
func orderedEvents(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// Create inserts the shipment together with its initial timeline.
func (r *ShipmentRepository) Create(ctx context.Context, shipment *models.CourierShipment) error {
	return r.translate(r.db.WithContext(ctx).Create(shipment).Error, 0)
}

func (r *ShipmentRepository) Get(ctx context.Context, id uint) (*models.CourierShipment, error) {
	var shipment models.CourierShipment
	err := r.db.WithContext(ctx).
		Preload("Events", orderedEvents).
		First(&shipment, id).Error
	if err != nil {
		return nil, r.translate(err, id)
	}
	return &shipment, nil
}

// Transition locks the shipment, lets fn change it and appends the event fn
// returns (if any) in the same transaction.
func (r *ShipmentRepository) Transition(ctx context.Context, id uint, fn func(*models.CourierShipment) (*models.CourierShipmentEvent, error)) (*models.CourierShipment, error) {
	_, err := r.Mutate(ctx, id, func(tx *gorm.DB, shipment *models.CourierShipment) error {
		event, err := fn(shipment)
		if err != nil || event == nil {
			return err
		}
		event.ShipmentID = shipment.ID
		return tx.Create(event).Error
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// ListTracked returns shipments a carrier can still report on.
func (r *ShipmentRepository) ListTracked(ctx context.Context) ([]models.CourierShipment, error) {
	var shipments []models.CourierShipment
	err := r.db.WithContext(ctx).
		Where("status IN ?", []models.CourierStatus{models.CourierStatusSent, models.CourierStatusInTransit}).
		Find(&shipments).Error
	return shipments, err
}

func (r *ShipmentRepository) Carriers(ctx context.Context) ([]models.Carrier, error) {
	var carriers []models.Carrier
	err := r.db.WithContext(ctx).Order("label").Find(&carriers).Error
	return carriers, err
}

func (r *ShipmentRepository) Carrier(ctx context.Context, key string) (*models.Carrier, error) {
	var carrier models.Carrier
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&carrier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.BadRequest("unknown carrier %q", key)
	}
	if err != nil {
		return nil, err
	}
	return &carrier, nil
}
