package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/models"
	"influencer-crm-service/ocr"
	"influencer-crm-service/repositories"
	"influencer-crm-service/storage"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type memShipments struct {
	items    map[uint]models.CourierShipment
	nextID   uint
	nextEvt  uint
	carriers map[string]models.Carrier
}

func newMemShipments() *memShipments {
	carriers := map[string]models.Carrier{}
	for _, c := range models.DefaultCarriers {
		carriers[c.Key] = c
	}
	return &memShipments{items: map[uint]models.CourierShipment{}, carriers: carriers}
}

func (m *memShipments) Create(_ context.Context, sh *models.CourierShipment) error {
	for _, existing := range m.items {
		if existing.TrackingNumber == sh.TrackingNumber {
			return apperrors.Conflict("courier shipment already exists")
		}
	}
	m.nextID++
	sh.ID = m.nextID
	for i := range sh.Events {
		m.nextEvt++
		sh.Events[i].ID = m.nextEvt
		sh.Events[i].ShipmentID = sh.ID
	}
	m.items[sh.ID] = cloneShipment(*sh)
	return nil
}

func (m *memShipments) Get(_ context.Context, id uint) (*models.CourierShipment, error) {
	sh, ok := m.items[id]
	if !ok {
		return nil, apperrors.NotFound("courier shipment %d not found", id)
	}
	cp := cloneShipment(sh)
	return &cp, nil
}

func (m *memShipments) Save(_ context.Context, sh *models.CourierShipment) error {
	m.items[sh.ID] = cloneShipment(*sh)
	return nil
}

func (m *memShipments) Delete(_ context.Context, id uint) error {
	if _, ok := m.items[id]; !ok {
		return apperrors.NotFound("courier shipment %d not found", id)
	}
	delete(m.items, id)
	return nil
}

func (m *memShipments) List(_ context.Context, q repositories.ListQuery) ([]models.CourierShipment, int64, error) {
	var out []models.CourierShipment
	for _, sh := range m.items {
		out = append(out, sh)
	}
	return out, int64(len(out)), nil
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
		m.nextEvt++
		event.ID = m.nextEvt
		event.ShipmentID = id
		sh.Events = append(sh.Events, *event)
	}
	m.items[id] = cloneShipment(*sh)
	return m.Get(ctx, id)
}

func (m *memShipments) ListTracked(_ context.Context) ([]models.CourierShipment, error) {
	var out []models.CourierShipment
	for _, sh := range m.items {
		if sh.Status.IsTracked() {
			out = append(out, cloneShipment(sh))
		}
	}
	return out, nil
}

func (m *memShipments) Carrier(_ context.Context, key string) (*models.Carrier, error) {
	c, ok := m.carriers[key]
	if !ok {
		return nil, apperrors.BadRequest("unknown carrier %q", key)
	}
	return &c, nil
}

func (m *memShipments) Carriers(_ context.Context) ([]models.Carrier, error) {
	return models.DefaultCarriers, nil
}

// cloneShipment copies the timeline in the order the repository loads it.
func cloneShipment(sh models.CourierShipment) models.CourierShipment {
	sh.Events = append([]models.CourierShipmentEvent(nil), sh.Events...)
	sort.SliceStable(sh.Events, func(i, j int) bool { return sh.Events[i].ID < sh.Events[j].ID })
	return sh
}

// memRepo is a map-backed Repo used by the CRUD service tests.
type memRepo[T any] struct {
	items  map[uint]T
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
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, int64(len(out)), nil
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

func (m *memInvoices) ListByStatus(_ context.Context, status models.InvoiceStatus, limit int) ([]models.InvoiceImage, error) {
	var out []models.InvoiceImage
	for id := uint(1); id <= m.nextID && len(out) < limit; id++ {
		if inv, ok := m.items[id]; ok && inv.Status == status {
			out = append(out, inv)
		}
	}
	return out, nil
}

type memPayouts struct {
	*memRepo[models.Payout]
}

func newMemPayouts() *memPayouts {
	return &memPayouts{memRepo: newMemRepo(
		func(p *models.Payout, id uint) { p.ID = id },
		func(p *models.Payout) uint { return p.ID },
	)}
}

func (m *memPayouts) Transition(ctx context.Context, id uint, fn func(*models.Payout) error) (*models.Payout, error) {
	p, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	m.items[id] = *p
	return p, nil
}

type memFiles struct {
	files   map[string][]byte
	removed []string
	n       int
}

func newMemFiles() *memFiles { return &memFiles{files: map[string][]byte{}} }

func (f *memFiles) Save(originalName string, r io.Reader) (storage.File, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return storage.File{}, err
	}
	f.n++
	name := fmt.Sprintf("file-%d%s", f.n, originalName[strings.LastIndex(originalName, "."):])
	path := "/uploads/" + name
	f.files[path] = body
	return storage.File{Name: name, Path: path, Size: int64(len(body))}, nil
}

func (f *memFiles) Open(path string) (io.ReadCloser, error) {
	body, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: not found", path)
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (f *memFiles) Remove(path string) error {
	delete(f.files, path)
	f.removed = append(f.removed, path)
	return nil
}

type stubExtractor struct {
	result *ocr.Result
	err    error
	seen   []ocr.Document
}

func (s *stubExtractor) Extract(_ context.Context, doc ocr.Document) (*ocr.Result, error) {
	s.seen = append(s.seen, doc)
	return s.result, s.err
}
