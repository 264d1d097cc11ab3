package response

import (
	"time"

	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type WorkingHourResponse struct {
	Meal string `json:"meal"`
	From string `json:"from"`
	To   string `json:"to"`
}

type CanteenResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Location     string                `json:"location"`
	Capacity     int32                 `json:"capacity"`
	WorkingHours []WorkingHourResponse `json:"workingHours"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

func FromCanteenView(v *queries.CanteenView) *CanteenResponse {
	hours := make([]WorkingHourResponse, 0, len(v.WorkingHours))
	for _, h := range v.WorkingHours {
		hours = append(hours, WorkingHourResponse{Meal: h.Meal, From: h.From, To: h.To})
	}
	return &CanteenResponse{
		ID:           v.ID,
		Name:         v.Name,
		Location:     v.Location,
		Capacity:     v.Capacity,
		WorkingHours: hours,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
