//go:build unit || e2e

package builder

import (
	"time"

	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RestrictionBuilder struct {
	ID        uuid.UUID
	StudentID uuid.UUID
	Reason    string
	StartsAt  time.Time
	EndsAt    time.Time
}

func NewRestrictionBuilder() *RestrictionBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &RestrictionBuilder{
		ID:        uuid.New(),
		StudentID: uuid.New(),
		Reason:    "repeated no-show",
		StartsAt:  now.Add(-time.Hour),
		EndsAt:    now.Add(72 * time.Hour),
	}
}

func (r *RestrictionBuilder) With(mutate func(*RestrictionBuilder)) *RestrictionBuilder {
	mutate(r)
	return r
}

// BuildCreateRequestDTO leaves StudentID zero; handlers fill it from
// the route path.
func (r *RestrictionBuilder) BuildCreateRequestDTO() reqdto.CreateRestrictionRequest {
	return reqdto.CreateRestrictionRequest{
		Reason:   r.Reason,
		StartsAt: r.StartsAt,
		EndsAt:   r.EndsAt,
	}
}

func (r *RestrictionBuilder) BuildViewQuery() *queries.RestrictionView {
	return &queries.RestrictionView{
		ID:        r.ID,
		StudentID: r.StudentID,
		Reason:    r.Reason,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		CreatedAt: time.Now().UTC(),
	}
}
