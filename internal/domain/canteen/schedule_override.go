package canteen

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOverrideWindow  = errors.New("override end date must not precede start date")
	ErrOverrideOutsideRegular = errors.New("override hours must fit inside regular working hours")
)

// ScheduleOverride replaces a canteen's regular working hours inside a
// date window, e.g. shortened serving during exams or renovation.
// Active reservations that no longer fit the reduced hours are
// cancelled when the override is created.
type ScheduleOverride struct {
	id        uuid.UUID
	canteenID uuid.UUID
	startDate time.Time
	endDate   time.Time
	hours     WorkingHours
	createdAt time.Time
}

func NewScheduleOverride(cant *Canteen, startDate, endDate time.Time, hours WorkingHours) (*ScheduleOverride, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidOverrideWindow
	}

	// An override may only shrink serving windows, never extend them.
	for _, h := range hours {
		if !cant.WorkingHours().CoverInterval(h.From().Minutes(), h.To().Minutes()) {
			return nil, ErrOverrideOutsideRegular
		}
	}

	return &ScheduleOverride{
		id:        uuid.New(),
		canteenID: cant.ID(),
		startDate: startDate,
		endDate:   endDate,
		hours:     hours,
	}, nil
}

func ReconstructScheduleOverride(
	id, canteenID uuid.UUID,
	startDate, endDate time.Time,
	hours WorkingHours,
	createdAt time.Time,
) *ScheduleOverride {
	return &ScheduleOverride{
		id:        id,
		canteenID: canteenID,
		startDate: startDate,
		endDate:   endDate,
		hours:     hours,
		createdAt: createdAt,
	}
}

func (o *ScheduleOverride) ID() uuid.UUID        { return o.id }
func (o *ScheduleOverride) CanteenID() uuid.UUID { return o.canteenID }
func (o *ScheduleOverride) StartDate() time.Time { return o.startDate }
func (o *ScheduleOverride) EndDate() time.Time   { return o.endDate }
func (o *ScheduleOverride) Hours() WorkingHours  { return o.hours }
func (o *ScheduleOverride) CreatedAt() time.Time { return o.createdAt }

// CoversDate uses date-only comparison; both bounds are inclusive.
func (o *ScheduleOverride) CoversDate(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(truncateToDate(o.startDate)) && !d.After(truncateToDate(o.endDate))
}

// Overlaps reports whether two override date windows intersect.
func (o *ScheduleOverride) Overlaps(startDate, endDate time.Time) bool {
	return !truncateToDate(endDate).Before(truncateToDate(o.startDate)) &&
		!truncateToDate(startDate).After(truncateToDate(o.endDate))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
