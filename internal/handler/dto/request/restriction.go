package request

import (
	"time"

	"canteen-reservation/internal/domain/restriction"

	"github.com/google/uuid"
)

type CreateRestrictionRequest struct {
	// StudentID comes from the route path, not the body.
	StudentID uuid.UUID `json:"-"`
	Reason    string    `json:"reason" binding:"required"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	EndsAt    time.Time `json:"ends_at" binding:"required"`
}

func (r CreateRestrictionRequest) ToDomain() (*restriction.Restriction, error) {
	return restriction.NewRestriction(r.StudentID, r.Reason, r.StartsAt, r.EndsAt)
}
