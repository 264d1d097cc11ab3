package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSlotInPast         = errors.New("slot must not be in the past")
	ErrInvalidDuration    = errors.New("slot duration must be 30 or 60 minutes")
	ErrStartOffGrid       = errors.New("slot must start on the hour or half hour")
	ErrInvalidStartMinute = errors.New("invalid slot start time")
)

// Slot is a reservable time window at a canteen: a calendar date, a
// start time on the half-hour grid and a duration of 30 or 60 minutes.
type Slot struct {
	date        time.Time // date only, UTC midnight
	startMin    int       // minutes since midnight
	durationMin int
}

func NewSlot(date time.Time, startMin, durationMin int, now time.Time) (Slot, error) {
	if startMin < 0 || startMin >= 24*60 {
		return Slot{}, ErrInvalidStartMinute
	}
	if startMin%30 != 0 {
		return Slot{}, ErrStartOffGrid
	}
	if durationMin != 30 && durationMin != 60 {
		return Slot{}, ErrInvalidDuration
	}

	s := Slot{
		date:        truncateToDate(date),
		startMin:    startMin,
		durationMin: durationMin,
	}
	if !s.StartsAt().After(now) {
		return Slot{}, ErrSlotInPast
	}
	return s, nil
}

// ReconstructSlot rebuilds a slot from storage without the
// future-start check; persisted slots may legitimately be in the past.
func ReconstructSlot(date time.Time, startMin, durationMin int) Slot {
	return Slot{
		date:        truncateToDate(date),
		startMin:    startMin,
		durationMin: durationMin,
	}
}

func (s Slot) Date() time.Time  { return s.date }
func (s Slot) StartMin() int    { return s.startMin }
func (s Slot) EndMin() int      { return s.startMin + s.durationMin }
func (s Slot) DurationMin() int { return s.durationMin }

func (s Slot) StartsAt() time.Time {
	return s.date.Add(time.Duration(s.startMin) * time.Minute)
}

func (s Slot) EndsAt() time.Time {
	return s.date.Add(time.Duration(s.EndMin()) * time.Minute)
}

// Overlaps reports whether two slots on the same date intersect.
// Slots on different dates never overlap.
func (s Slot) Overlaps(other Slot) bool {
	if !s.date.Equal(other.date) {
		return false
	}
	return s.startMin < other.EndMin() && other.startMin < s.EndMin()
}

func (s Slot) String() string {
	return fmt.Sprintf("%s %02d:%02d+%dm", s.date.Format("2006-01-02"), s.startMin/60, s.startMin%60, s.durationMin)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
