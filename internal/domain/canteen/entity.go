package canteen

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCanteenName = errors.New("canteen name must not be empty")
	ErrInvalidLocation    = errors.New("canteen location must not be empty")
)

// Canteen is read-only from the reservation flow's perspective;
// administration happens through dedicated admin commands.
type Canteen struct {
	id           uuid.UUID
	name         string
	location     string
	capacity     Capacity
	workingHours WorkingHours
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCanteen(name, location string, capacity Capacity, hours WorkingHours) (*Canteen, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidCanteenName
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrInvalidLocation
	}

	return &Canteen{
		id:           uuid.New(),
		name:         name,
		location:     location,
		capacity:     capacity,
		workingHours: hours,
	}, nil
}

func ReconstructCanteen(
	id uuid.UUID,
	name, location string,
	capacity Capacity,
	hours WorkingHours,
	createdAt, updatedAt time.Time,
) *Canteen {
	return &Canteen{
		id:           id,
		name:         name,
		location:     location,
		capacity:     capacity,
		workingHours: hours,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Canteen) ID() uuid.UUID              { return c.id }
func (c *Canteen) Name() string               { return c.name }
func (c *Canteen) Location() string           { return c.location }
func (c *Canteen) Capacity() Capacity         { return c.capacity }
func (c *Canteen) WorkingHours() WorkingHours { return c.workingHours }
func (c *Canteen) CreatedAt() time.Time       { return c.createdAt }
func (c *Canteen) UpdatedAt() time.Time       { return c.updatedAt }

// IsOpenFor reports whether the canteen serves the whole
// [startMin, endMin) interval under the given effective hours.
// Effective hours are the regular ones unless a schedule override
// covers the date.
func (c *Canteen) IsOpenFor(effective WorkingHours, startMin, endMin int) bool {
	return effective.CoverInterval(startMin, endMin)
}
