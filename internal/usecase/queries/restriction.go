package queries

import (
	"context"

	"github.com/google/uuid"
)

type RestrictionQueries interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*RestrictionView, error)
}

type RestrictionReadStore interface {
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*RestrictionView, error)
}

type restrictionQueriesImpl struct {
	store RestrictionReadStore
}

func NewRestrictionQueries(store RestrictionReadStore) RestrictionQueries {
	return &restrictionQueriesImpl{store: store}
}

func (q *restrictionQueriesImpl) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*RestrictionView, error) {
	return q.store.FindByStudent(ctx, studentID)
}
