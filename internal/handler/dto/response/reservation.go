package response

import (
	"time"

	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	StudentID    uuid.UUID `json:"studentId"`
	StudentEmail string    `json:"studentEmail"`
	CanteenID    uuid.UUID `json:"canteenId"`
	CanteenName  string    `json:"canteenName"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	DurationMin  int32     `json:"durationMin"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	CanteenID   uuid.UUID `json:"canteenId"`
	CanteenName string    `json:"canteenName"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	DurationMin int32     `json:"durationMin"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           v.ID,
		StudentID:    v.StudentID,
		StudentEmail: v.StudentEmail,
		CanteenID:    v.CanteenID,
		CanteenName:  v.CanteenName,
		Date:         v.Date.Format("2006-01-02"),
		StartTime:    v.StartTime,
		DurationMin:  v.DurationMin,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromReservationListItem(v *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:          v.ID,
		CanteenID:   v.CanteenID,
		CanteenName: v.CanteenName,
		Date:        v.Date.Format("2006-01-02"),
		StartTime:   v.StartTime,
		DurationMin: v.DurationMin,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
	}
}
