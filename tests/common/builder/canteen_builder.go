//go:build unit || e2e

package builder

import (
	"time"

	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type CanteenBuilder struct {
	ID       uuid.UUID
	Name     string
	Location string
	Capacity int32
	Hours    []reqdto.WorkingHourRequest
}

func NewCanteenBuilder() *CanteenBuilder {
	return &CanteenBuilder{
		ID:       uuid.New(),
		Name:     "Studentski Grad",
		Location: "Block 34",
		Capacity: 120,
		Hours: []reqdto.WorkingHourRequest{
			{Meal: "breakfast", From: "07:00", To: "10:00"},
			{Meal: "lunch", From: "11:30", To: "14:30"},
			{Meal: "dinner", From: "18:00", To: "21:00"},
		},
	}
}

func (c *CanteenBuilder) With(mutate func(*CanteenBuilder)) *CanteenBuilder {
	mutate(c)
	return c
}

func (c *CanteenBuilder) BuildCreateRequestDTO() reqdto.CreateCanteenRequest {
	return reqdto.CreateCanteenRequest{
		Name:         c.Name,
		Location:     c.Location,
		Capacity:     int(c.Capacity),
		WorkingHours: c.Hours,
	}
}

func (c *CanteenBuilder) BuildViewQuery() *queries.CanteenView {
	now := time.Now().UTC()
	hours := make([]queries.WorkingHourView, len(c.Hours))
	for i, h := range c.Hours {
		hours[i] = queries.WorkingHourView{Meal: h.Meal, From: h.From, To: h.To}
	}
	return &queries.CanteenView{
		ID:           c.ID,
		Name:         c.Name,
		Location:     c.Location,
		Capacity:     c.Capacity,
		WorkingHours: hours,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
