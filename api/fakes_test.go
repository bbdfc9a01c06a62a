package api

import (
	"context"
	"strings"

	"influencer-crm-service/analytics"
	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/repositories"
)

type memRepo[T any] struct {
	items  map[uint]T
	order  []uint
	nextID uint
	setID  func(*T, uint)
	getID  func(*T) uint
}

func newMemRepo[T any](setID func(*T, uint), getID func(*T) uint) *memRepo[T] {
	return &memRepo[T]{items: map[uint]T{}, setID: setID, getID: getID}
}

func (m *memRepo[T]) Create(_ context.Context, item *T) error {
	m.nextID++
	m.setID(item, m.nextID)
	m.items[m.nextID] = *item
	m.order = append(m.order, m.nextID)
	return nil
}

func (m *memRepo[T]) Get(_ context.Context, id uint, _ ...string) (*T, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, apperrors.NotFound("record %d not found", id)
	}
	return &item, nil
}

func (m *memRepo[T]) Save(_ context.Context, item *T) error {
	m.items[m.getID(item)] = *item
	return nil
}

func (m *memRepo[T]) Delete(_ context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return apperrors.NotFound("record %d not found", id)
	}
	delete(m.items, id)
	return nil
}

func (m *memRepo[T]) List(_ context.Context, _ repositories.ListQuery) ([]T, int64, error) {
	var out []T
	for _, id := range m.order {
		if item, ok := m.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, int64(len(out)), nil
}

type memUsers struct {
	*memRepo[models.User]
}

func (m *memUsers) ByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.items {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

type memShipments struct {
	*memRepo[models.CourierShipment]
	nextEvent uint
}

func newMemShipments() *memShipments {
	return &memShipments{memRepo: newMemRepo(
		func(s *models.CourierShipment, id uint) { s.ID = id },
		func(s *models.CourierShipment) uint { return s.ID },
	)}
}

func (m *memShipments) Create(ctx context.Context, sh *models.CourierShipment) error {
	for _, existing := range m.items {
		if existing.TrackingNumber == sh.TrackingNumber {
			return apperrors.Conflict("courier shipment already exists")
		}
	}
	for i := range sh.Events {
		m.nextEvent++
		sh.Events[i].ID = m.nextEvent
	}
	return m.memRepo.Create(ctx, sh)
}

func (m *memShipments) Get(ctx context.Context, id uint) (*models.CourierShipment, error) {
	sh, err := m.memRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sh.Events = append([]models.CourierShipmentEvent(nil), sh.Events...)
	return sh, nil
}

func (m *memShipments) Transition(ctx context.Context, id uint, fn func(*models.CourierShipment) (*models.CourierShipmentEvent, error)) (*models.CourierShipment, error) {
	sh, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	event, err := fn(sh)
	if err != nil {
		return nil, err
	}
	if event != nil {
		m.nextEvent++
		event.ID = m.nextEvent
		event.ShipmentID = id
		sh.Events = append(sh.Events, *event)
	}
	m.items[id] = *sh
	return m.Get(ctx, id)
}

func (m *memShipments) ListTracked(context.Context) ([]models.CourierShipment, error) {
	return nil, nil
}

func (m *memShipments) Carrier(_ context.Context, key string) (*models.Carrier, error) {
	for _, c := range models.DefaultCarriers {
		if c.Key == key {
			return &c, nil
		}
	}
	return nil, apperrors.BadRequest("unknown carrier %q", key)
}

func (m *memShipments) Carriers(context.Context) ([]models.Carrier, error) {
	return models.DefaultCarriers, nil
}

type memInvoices struct {
	*memRepo[models.InvoiceImage]
}

func newMemInvoices() *memInvoices {
	return &memInvoices{memRepo: newMemRepo(
		func(i *models.InvoiceImage, id uint) { i.ID = id },
		func(i *models.InvoiceImage) uint { return i.ID },
	)}
}

func (m *memInvoices) Transition(ctx context.Context, id uint, fn func(*models.InvoiceImage) error) (*models.InvoiceImage, error) {
	inv, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(inv); err != nil {
		return nil, err
	}
	m.items[id] = *inv
	return inv, nil
}

func (m *memInvoices) ListByStatus(context.Context, models.InvoiceStatus, int) ([]models.InvoiceImage, error) {
	return nil, nil
}

type fakeAnalytics struct {
	influencers map[uint]bool
	campaigns   map[uint]models.Campaign
	firmStores  map[uint][]uint
	metrics     []models.PerformanceMetric
}

func (f *fakeAnalytics) InfluencerExists(_ context.Context, id uint) (bool, error) {
	return f.influencers[id], nil
}

func (f *fakeAnalytics) Campaign(_ context.Context, id uint) (*models.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, apperrors.NotFound("campaign %d not found", id)
	}
	return &c, nil
}

func (f *fakeAnalytics) CampaignInfluencerCount(context.Context, uint) (int64, error) {
	return 0, nil
}

func (f *fakeAnalytics) FirmStoreIDs(_ context.Context, firmID uint) ([]uint, error) {
	return f.firmStores[firmID], nil
}

func (f *fakeAnalytics) Metrics(_ context.Context, filter analytics.MetricFilter) ([]models.PerformanceMetric, error) {
	var out []models.PerformanceMetric
	for _, m := range f.metrics {
		if filter.InfluencerID != nil && (m.InfluencerID == nil || *m.InfluencerID != *filter.InfluencerID) {
			continue
		}
		if filter.CampaignID != nil && (m.CampaignID == nil || *m.CampaignID != *filter.CampaignID) {
			continue
		}
		if filter.ByStores && (m.StoreID == nil || !containsID(filter.StoreIDs, *m.StoreID)) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
