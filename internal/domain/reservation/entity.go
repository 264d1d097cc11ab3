package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotCancellable = errors.New("reservation is not in a cancellable state")
	ErrNotCompletable = errors.New("reservation is not in a completable state")
	ErrSlotNotOver    = errors.New("slot has not ended yet")
	ErrInvalidStatus  = errors.New("invalid reservation status")
)

// Reservation is the only entity whose status the service layer
// mutates. Rows are never deleted; cancelled and completed rows stay
// for history.
type Reservation struct {
	id        uuid.UUID
	studentID uuid.UUID
	canteenID uuid.UUID
	slot      Slot
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(studentID, canteenID uuid.UUID, slot Slot) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		studentID: studentID,
		canteenID: canteenID,
		slot:      slot,
		status:    StatusActive,
	}
}

func ReconstructReservation(
	id, studentID, canteenID uuid.UUID,
	slot Slot,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		studentID: studentID,
		canteenID: canteenID,
		slot:      slot,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) StudentID() uuid.UUID { return r.studentID }
func (r *Reservation) CanteenID() uuid.UUID { return r.canteenID }
func (r *Reservation) Slot() Slot           { return r.slot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsOwnedBy(studentID uuid.UUID) bool {
	return r.studentID == studentID
}

// Cancel transitions active to cancelled. Terminal states stay put.
func (r *Reservation) Cancel() error {
	if r.status != StatusActive {
		return ErrNotCancellable
	}
	r.status = StatusCancelled
	return nil
}

// Complete transitions active to completed once the slot has passed.
func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotCompletable
	}
	if now.Before(r.slot.EndsAt()) {
		return ErrSlotNotOver
	}
	r.status = StatusCompleted
	return nil
}
