package queries

import (
	"context"

	"github.com/google/uuid"
)

type StudentQueries interface {
	List(ctx context.Context) ([]*StudentView, error)
	GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedStudentView, error)
}

type StudentReadStore interface {
	FindAll(ctx context.Context) ([]*StudentView, error)
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedStudentView, error)
}

type studentQueriesImpl struct {
	store StudentReadStore
}

func NewStudentQueries(store StudentReadStore) StudentQueries {
	return &studentQueriesImpl{store: store}
}

func (q *studentQueriesImpl) List(ctx context.Context) ([]*StudentView, error) {
	return q.store.FindAll(ctx)
}

func (q *studentQueriesImpl) GetAuthorized(ctx context.Context, id uuid.UUID) (*AuthorizedStudentView, error) {
	return q.store.FindAuthorizedByID(ctx, id)
}
