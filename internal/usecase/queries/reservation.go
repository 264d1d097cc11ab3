package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ActiveByStudent returns the student's single active reservation.
	// The one-active-per-student invariant makes the result unique.
	ActiveByStudent(ctx context.Context, studentID uuid.UUID) (*ReservationView, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*ReservationListItem, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindActiveByStudent(ctx context.Context, studentID uuid.UUID) (*ReservationView, error)
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ActiveByStudent(ctx context.Context, studentID uuid.UUID) (*ReservationView, error) {
	return q.store.FindActiveByStudent(ctx, studentID)
}

func (q *reservationQueriesImpl) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*ReservationListItem, error) {
	return q.store.FindByStudent(ctx, studentID)
}
