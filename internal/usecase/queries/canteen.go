package queries

import (
	"context"

	"github.com/google/uuid"
)

type CanteenQueries interface {
	List(ctx context.Context) ([]*CanteenView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CanteenView, error)
}

type CanteenReadStore interface {
	FindAll(ctx context.Context) ([]*CanteenView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CanteenView, error)
}

type canteenQueriesImpl struct {
	store CanteenReadStore
}

func NewCanteenQueries(store CanteenReadStore) CanteenQueries {
	return &canteenQueriesImpl{store: store}
}

func (q *canteenQueriesImpl) List(ctx context.Context) ([]*CanteenView, error) {
	return q.store.FindAll(ctx)
}

func (q *canteenQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CanteenView, error) {
	return q.store.FindByID(ctx, id)
}
