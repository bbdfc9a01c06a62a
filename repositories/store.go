package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"influencer-crm-service/apperrors"
	"influencer-crm-service/database"
)

// Store is the generic gorm repository shared by the CRUD entities.
type Store[T any] struct {
	db     *gorm.DB
	entity string
	spec   ListSpec
}

func NewStore[T any](db *gorm.DB, entity string, spec ListSpec) *Store[T] {
	return &Store[T]{db: db, entity: entity, spec: spec}
}

func (s *Store[T]) DB() *gorm.DB { return s.db }

func (s *Store[T]) Create(ctx context.Context, item *T) error {
	return s.translate(s.db.WithContext(ctx).Create(item).Error, 0)
}

func (s *Store[T]) Get(ctx context.Context, id uint, preloads ...string) (*T, error) {
	var item T
	db := s.db.WithContext(ctx)
	for _, p := range preloads {
		db = db.Preload(p)
	}
	if err := db.First(&item, id).Error; err != nil {
		return nil, s.translate(err, id)
	}
	return &item, nil
}

func (s *Store[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	var item T
	err := s.db.WithContext(ctx).Model(&item).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *Store[T]) Save(ctx context.Context, item *T) error {
	return s.translate(s.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error, 0)
}

func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	var item T
	result := s.db.WithContext(ctx).Delete(&item, id)
	if result.Error != nil {
		return s.translate(result.Error, id)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("%s %d not found", s.entity, id)
	}
	return nil
}

func (s *Store[T]) List(ctx context.Context, q ListQuery) ([]T, int64, error) {
	q = q.Normalize()
	var (
		items []T
		total int64
		model T
	)

	base := s.spec.apply(s.db.WithContext(ctx).Model(&model), q).Session(&gorm.Session{})
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Order(s.spec.order(q)).
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Mutate runs fn against the row locked FOR UPDATE and saves the result in
// the same transaction, so concurrent status changes serialize.
func (s *Store[T]) Mutate(ctx context.Context, id uint, fn func(tx *gorm.DB, item *T) error) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id).Error; err != nil {
			return s.translate(err, id)
		}
		if err := fn(tx, &item); err != nil {
			return err
		}
		return s.translate(tx.Omit(clause.Associations).Save(&item).Error, id)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store[T]) translate(err error, id uint) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound("%s %d not found", s.entity, id)
	case database.IsUniqueViolation(err):
		return apperrors.Conflict("%s already exists", s.entity)
	case database.IsForeignKeyViolation(err):
		return apperrors.BadRequest("%s references a record that does not exist", s.entity)
	default:
		return err
	}
}
