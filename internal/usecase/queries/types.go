package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID           uuid.UUID `json:"id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentEmail string    `json:"student_email"`
	CanteenID    uuid.UUID `json:"canteen_id"`
	CanteenName  string    `json:"canteen_name"`
	Date         time.Time `json:"date"`
	StartTime    string    `json:"start_time"`
	DurationMin  int32     `json:"duration_min"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID          uuid.UUID `json:"id"`
	CanteenID   uuid.UUID `json:"canteen_id"`
	CanteenName string    `json:"canteen_name"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	DurationMin int32     `json:"duration_min"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type WorkingHourView struct {
	Meal string `json:"meal"`
	From string `json:"from"`
	To   string `json:"to"`
}

type CanteenView struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Location     string            `json:"location"`
	Capacity     int32             `json:"capacity"`
	WorkingHours []WorkingHourView `json:"working_hours"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type StudentView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedStudentView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type RestrictionView struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	Reason    string    `json:"reason"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
}
