package request

import (
	"time"

	"canteen-reservation/internal/domain/canteen"
)

type WorkingHourRequest struct {
	Meal string `json:"meal" binding:"required,oneof=breakfast lunch dinner"`
	From string `json:"from" binding:"required" example:"11:00"`
	To   string `json:"to" binding:"required" example:"14:00"`
}

type CreateCanteenRequest struct {
	Name         string               `json:"name" binding:"required"`
	Location     string               `json:"location" binding:"required"`
	Capacity     int                  `json:"capacity" binding:"required,min=1"`
	WorkingHours []WorkingHourRequest `json:"working_hours" binding:"required,min=1,dive"`
}

func (r CreateCanteenRequest) ToDomain() (*canteen.Canteen, error) {
	capacity, err := canteen.NewCapacity(r.Capacity)
	if err != nil {
		return nil, err
	}
	hours, err := toWorkingHours(r.WorkingHours)
	if err != nil {
		return nil, err
	}
	return canteen.NewCanteen(r.Name, r.Location, capacity, hours)
}

type UpdateCanteenRequest struct {
	Name         *string              `json:"name" binding:"omitempty,min=1"`
	Location     *string              `json:"location" binding:"omitempty,min=1"`
	Capacity     *int                 `json:"capacity" binding:"omitempty,min=1"`
	WorkingHours []WorkingHourRequest `json:"working_hours" binding:"omitempty,min=1,dive"`
}

func (r UpdateCanteenRequest) ToHours() (canteen.WorkingHours, error) {
	return toWorkingHours(r.WorkingHours)
}

type CreateOverrideRequest struct {
	StartDate string               `json:"start_date" binding:"required" example:"2026-09-20"`
	EndDate   string               `json:"end_date" binding:"required" example:"2026-09-27"`
	Hours     []WorkingHourRequest `json:"hours" binding:"required,min=1,dive"`
}

func (r CreateOverrideRequest) ParseWindow() (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", r.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, canteen.ErrInvalidOverrideWindow
	}
	end, err := time.ParseInLocation("2006-01-02", r.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, canteen.ErrInvalidOverrideWindow
	}
	return start, end, nil
}

func (r CreateOverrideRequest) ToHours() (canteen.WorkingHours, error) {
	return toWorkingHours(r.Hours)
}

func toWorkingHours(reqs []WorkingHourRequest) (canteen.WorkingHours, error) {
	hours := make([]canteen.WorkingHour, 0, len(reqs))
	for _, hr := range reqs {
		meal, err := canteen.NewMeal(hr.Meal)
		if err != nil {
			return nil, err
		}
		from, err := canteen.ParseTimeOfDay(hr.From)
		if err != nil {
			return nil, err
		}
		to, err := canteen.ParseTimeOfDay(hr.To)
		if err != nil {
			return nil, err
		}
		h, err := canteen.NewWorkingHour(meal, from, to)
		if err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return canteen.NewWorkingHours(hours)
}
