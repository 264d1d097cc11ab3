package canteen

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity    = errors.New("capacity must be positive")
	ErrInvalidTimeOfDay   = errors.New("invalid time of day")
	ErrInvalidMeal        = errors.New("invalid meal type")
	ErrInvalidHoursWindow = errors.New("working hours window must start before it ends")
	ErrEmptyWorkingHours  = errors.New("at least one working hours window is required")
)

type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
)

func (m Meal) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	default:
		return false
	}
}

func (m Meal) String() string {
	return string(m)
}

func NewMeal(s string) (Meal, error) {
	m := Meal(s)
	if !m.IsValid() {
		return "", ErrInvalidMeal
	}
	return m, nil
}

// TimeOfDay is a wall-clock time stored as minutes since midnight.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= 24*60 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: minutes}, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// WorkingHour is one serving window of a canteen, e.g. lunch 11:00-14:00.
type WorkingHour struct {
	meal Meal
	from TimeOfDay
	to   TimeOfDay
}

func NewWorkingHour(meal Meal, from, to TimeOfDay) (WorkingHour, error) {
	if !meal.IsValid() {
		return WorkingHour{}, ErrInvalidMeal
	}
	if !from.Before(to) {
		return WorkingHour{}, ErrInvalidHoursWindow
	}
	return WorkingHour{meal: meal, from: from, to: to}, nil
}

func (w WorkingHour) Meal() Meal      { return w.meal }
func (w WorkingHour) From() TimeOfDay { return w.from }
func (w WorkingHour) To() TimeOfDay   { return w.to }

// Contains reports whether the [startMin, endMin) interval, in minutes
// since midnight, fits entirely inside this window.
func (w WorkingHour) Contains(startMin, endMin int) bool {
	return w.from.Minutes() <= startMin && endMin <= w.to.Minutes()
}

type WorkingHours []WorkingHour

func NewWorkingHours(hours []WorkingHour) (WorkingHours, error) {
	if len(hours) == 0 {
		return nil, ErrEmptyWorkingHours
	}
	return WorkingHours(hours), nil
}

// CoverInterval reports whether any single window contains the interval.
// Intervals spanning two windows are not served.
func (ws WorkingHours) CoverInterval(startMin, endMin int) bool {
	for _, w := range ws {
		if w.Contains(startMin, endMin) {
			return true
		}
	}
	return false
}

// MealFor returns the meal whose window contains the start minute.
func (ws WorkingHours) MealFor(startMin int) (Meal, bool) {
	for _, w := range ws {
		if w.from.Minutes() <= startMin && startMin < w.to.Minutes() {
			return w.meal, true
		}
	}
	return "", false
}

type Capacity struct {
	value int
}

func NewCapacity(v int) (Capacity, error) {
	if v <= 0 {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{value: v}, nil
}

func (c Capacity) Value() int { return c.value }
