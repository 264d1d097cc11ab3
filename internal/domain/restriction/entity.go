package restriction

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow = errors.New("restriction window must end after it starts")
	ErrEmptyReason   = errors.New("restriction reason must not be empty")
)

// Restriction is a time-bounded penalty disqualifying a student from
// new reservations. Expired records are kept as history; only windows
// containing the current time are enforced.
type Restriction struct {
	id        uuid.UUID
	studentID uuid.UUID
	reason    string
	startsAt  time.Time
	endsAt    time.Time
	createdAt time.Time
}

func NewRestriction(studentID uuid.UUID, reason string, startsAt, endsAt time.Time) (*Restriction, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidWindow
	}

	return &Restriction{
		id:        uuid.New(),
		studentID: studentID,
		reason:    reason,
		startsAt:  startsAt,
		endsAt:    endsAt,
	}, nil
}

func ReconstructRestriction(
	id, studentID uuid.UUID,
	reason string,
	startsAt, endsAt, createdAt time.Time,
) *Restriction {
	return &Restriction{
		id:        id,
		studentID: studentID,
		reason:    reason,
		startsAt:  startsAt,
		endsAt:    endsAt,
		createdAt: createdAt,
	}
}

func (r *Restriction) ID() uuid.UUID        { return r.id }
func (r *Restriction) StudentID() uuid.UUID { return r.studentID }
func (r *Restriction) Reason() string       { return r.reason }
func (r *Restriction) StartsAt() time.Time  { return r.startsAt }
func (r *Restriction) EndsAt() time.Time    { return r.endsAt }
func (r *Restriction) CreatedAt() time.Time { return r.createdAt }

// InForceAt reports whether the penalty window contains the instant.
// The start bound is inclusive, the end bound exclusive.
func (r *Restriction) InForceAt(now time.Time) bool {
	return !now.Before(r.startsAt) && now.Before(r.endsAt)
}
