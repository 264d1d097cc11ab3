package response

import (
	"time"

	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RestrictionResponse struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"studentId"`
	Reason    string    `json:"reason"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromRestrictionView(v *queries.RestrictionView) *RestrictionResponse {
	return &RestrictionResponse{
		ID:        v.ID,
		StudentID: v.StudentID,
		Reason:    v.Reason,
		StartsAt:  v.StartsAt,
		EndsAt:    v.EndsAt,
		CreatedAt: v.CreatedAt,
	}
}
