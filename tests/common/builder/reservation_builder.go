//go:build unit || e2e

package builder

import (
	"time"

	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	StudentID    uuid.UUID
	StudentEmail string
	CanteenID    uuid.UUID
	CanteenName  string
	Date         time.Time
	StartTime    string
	DurationMin  int32
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC()
	tomorrow := now.AddDate(0, 0, 1).Truncate(24 * time.Hour)
	return &ReservationBuilder{
		ID:           uuid.New(),
		StudentID:    uuid.New(),
		StudentEmail: "test@example.com",
		CanteenID:    uuid.New(),
		CanteenName:  "Studentski Grad",
		Date:         tomorrow,
		StartTime:    "12:00",
		DurationMin:  30,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CanteenID:   r.CanteenID,
		Date:        r.Date.Format("2006-01-02"),
		StartTime:   r.StartTime,
		DurationMin: int(r.DurationMin),
	}
}

func (r *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           r.ID,
		StudentID:    r.StudentID,
		StudentEmail: r.StudentEmail,
		CanteenID:    r.CanteenID,
		CanteenName:  r.CanteenName,
		Date:         r.Date,
		StartTime:    r.StartTime,
		DurationMin:  r.DurationMin,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:          r.ID,
		CanteenID:   r.CanteenID,
		CanteenName: r.CanteenName,
		Date:        r.Date,
		StartTime:   r.StartTime,
		DurationMin: r.DurationMin,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}
