// Package services holds the request-scoped business logic behind the HTTP
// handlers: input mapping, validation beyond DTO tags, and status
// transitions through the lifecycle guards.
package services

import (
	"context"

	"influencer-crm-service/repositories"
)

// Repo is the CRUD surface every entity store provides.
type Repo[T any] interface {
	Create(ctx context.Context, item *T) error
	Get(ctx context.Context, id uint, preloads ...string) (*T, error)
	Save(ctx context.Context, item *T) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q repositories.ListQuery) ([]T, int64, error)
}

type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func listPage[T any](ctx context.Context, list func(context.Context, repositories.ListQuery) ([]T, int64, error), q repositories.ListQuery) (*Page[T], error) {
	q = q.Normalize()
	items, total, err := list(ctx, q)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Total: total, Page: q.Page, Limit: q.Limit}, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
