package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"canteen-reservation/internal/domain/canteen"
	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCanteenAlreadyExists  = errs.New("canteen already exists")
	ErrOverrideWindowOverlap = errs.New("override window overlaps an existing one")
)

type CanteenCommands interface {
	Create(ctx context.Context, req reqdto.CreateCanteenRequest) (uuid.UUID, error)
	// Update rewrites the fields present in the request; omitted
	// fields keep their stored value. Hour changes apply to new
	// admissions only, existing reservations are left alone.
	Update(ctx context.Context, canteenID uuid.UUID, req reqdto.UpdateCanteenRequest) error
	// CreateOverride installs replacement working hours for a date
	// window and cancels active reservations that no longer fit.
	CreateOverride(ctx context.Context, canteenID uuid.UUID, req reqdto.CreateOverrideRequest) (uuid.UUID, error)
}

type canteenCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCanteenCommands(uow shared.UnitOfWork) CanteenCommands {
	return &canteenCommandsImpl{uow: uow}
}

func (c *canteenCommandsImpl) Create(ctx context.Context, req reqdto.CreateCanteenRequest) (uuid.UUID, error) {
	cant, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Canteens().Create(ctx, tx.DB(), cant)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrCanteenAlreadyExists
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (c *canteenCommandsImpl) Update(ctx context.Context, canteenID uuid.UUID, req reqdto.UpdateCanteenRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CanteenByID(ctx, canteenID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCanteenNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// The binding layer lets a present-but-empty string through,
		// so emptiness is checked here with the domain's errors.
		name := snap.Name
		if req.Name != nil {
			name = strings.TrimSpace(*req.Name)
			if name == "" {
				return errs.Mark(canteen.ErrInvalidCanteenName, ErrDomainValidation)
			}
		}
		location := snap.Location
		if req.Location != nil {
			location = strings.TrimSpace(*req.Location)
			if location == "" {
				return errs.Mark(canteen.ErrInvalidLocation, ErrDomainValidation)
			}
		}
		capacityValue := snap.Capacity
		if req.Capacity != nil {
			capacityValue = *req.Capacity
		}
		capacity, err := canteen.NewCapacity(capacityValue)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		hours := snap.Hours
		if req.WorkingHours != nil {
			hours, err = req.ToHours()
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}

		cant := canteen.ReconstructCanteen(snap.ID, name, location, capacity, hours, time.Time{}, time.Time{})
		if err := tx.Canteens().Update(ctx, tx.DB(), cant); err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return ErrCanteenAlreadyExists
			case infra.IsKind(err, infra.KindNotFound):
				return ErrCanteenNotFound
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

func (c *canteenCommandsImpl) CreateOverride(ctx context.Context, canteenID uuid.UUID, req reqdto.CreateOverrideRequest) (uuid.UUID, error) {
	startDate, endDate, err := req.ParseWindow()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	hours, err := req.ToHours()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var overrideID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		snap, err := reads.CanteenByID(ctx, canteenID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCanteenNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Admissions for these dates hold the same per-date locks, so
		// any in-flight reservation commits before or after the new
		// hours and the displaced-actives scan below misses nothing.
		// Dates ascend; admissions hold at most one date lock each.
		for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
			if err := tx.LockCanteenDate(ctx, canteenID, d); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		overlaps, err := reads.HasOverlappingOverride(ctx, canteenID, startDate, endDate)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlaps {
			return ErrOverrideWindowOverlap
		}

		capacity, err := canteen.NewCapacity(snap.Capacity)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		cant := canteen.ReconstructCanteen(snap.ID, snap.Name, snap.Location, capacity, snap.Hours, time.Time{}, time.Time{})

		override, err := canteen.NewScheduleOverride(cant, startDate, endDate, hours)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		overrideID, err = tx.Canteens().CreateOverride(ctx, tx.DB(), override)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Cancel active reservations the reduced hours no longer serve.
		actives, err := tx.Reservations().FindActiveByCanteenDates(ctx, tx.DB(), canteenID, startDate, endDate)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		var toCancel []uuid.UUID
		for _, res := range actives {
			if !hours.CoverInterval(res.Slot.StartMin(), res.Slot.EndMin()) {
				toCancel = append(toCancel, res.ID)
			}
		}
		if len(toCancel) > 0 {
			cancelled, err := tx.Reservations().CancelByIDs(ctx, tx.DB(), toCancel)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			slog.Info("cancelled reservations displaced by schedule override",
				"canteen_id", canteenID, "override_id", overrideID, "count", cancelled)
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return overrideID, nil
}
