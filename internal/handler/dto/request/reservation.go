package request

import (
	"time"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CanteenID   uuid.UUID `json:"canteen_id" binding:"required"`
	Date        string    `json:"date" binding:"required" example:"2026-09-15"`
	StartTime   string    `json:"start_time" binding:"required" example:"12:30"`
	DurationMin int       `json:"duration_min" binding:"required,oneof=30 60"`
}

// ToSlot parses the wire shape into a slot, enforcing the grid and the
// future-start rule against now.
func (r CreateReservationRequest) ToSlot(now time.Time) (reservation.Slot, error) {
	date, err := time.ParseInLocation("2006-01-02", r.Date, time.UTC)
	if err != nil {
		return reservation.Slot{}, reservation.ErrInvalidStartMinute
	}
	start, err := canteen.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return reservation.Slot{}, reservation.ErrInvalidStartMinute
	}
	return reservation.NewSlot(date, start.Minutes(), r.DurationMin, now)
}
