package commands

import (
	"context"
	"log/slog"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/domain/reservation"
	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStudentNotFound           = errs.New("student not found")
	ErrCanteenNotFound           = errs.New("canteen not found")
	ErrCanteenClosed             = errs.New("canteen closed for the requested slot")
	ErrStudentRestricted         = errs.New("student is restricted")
	ErrActiveReservationExists   = errs.New("student already has an active reservation")
	ErrSlotFull                  = errs.New("slot capacity exhausted")
	ErrReservationNotFound       = errs.New("reservation not found")
	ErrNotReservationOwner       = errs.New("reservation belongs to another student")
	ErrReservationNotCancellable = errs.New("reservation is not cancellable")
	ErrDomainValidation          = errs.New("domain validation error")
	ErrDatabaseOperationFailed   = errs.New("database operation failed")
)

type ReservationCommands interface {
	Create(ctx context.Context, studentID uuid.UUID, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	Cancel(ctx context.Context, reservationID, callerID uuid.UUID, callerIsAdmin bool) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		clock:              clock,
	}
}

// Create admits a reservation. Precondition checks run in a fixed
// order so a request failing several of them always reports the same
// error. The student and canteen-date advisory locks serialize the
// one-active-per-student and capacity checks; the partial unique index
// on active reservations backstops the former, so a lost race comes
// back as a duplicate key and maps to ErrActiveReservationExists.
func (r *reservationCommandsImpl) Create(
	ctx context.Context,
	studentID uuid.UUID,
	req reqdto.CreateReservationRequest,
) (*queries.ReservationView, error) {
	now := r.clock.Now()

	slot, err := req.ToSlot(now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var (
		reservationID uuid.UUID
		meal          canteen.Meal
	)
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		studentSnap, err := reads.StudentByID(ctx, studentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrStudentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !studentSnap.IsActive {
			return ErrStudentNotFound
		}

		canteenSnap, err := reads.CanteenByID(ctx, req.CanteenID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCanteenNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Lock order is fixed (student, then canteen-date) so
		// concurrent admissions cannot deadlock. The locks come
		// before the hours read: a schedule override commits under
		// the same canteen-date lock, so the effective hours seen
		// here cannot be stale.
		if err := tx.LockStudent(ctx, studentID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.LockCanteenDate(ctx, req.CanteenID, slot.Date()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		effective := canteenSnap.Hours
		if overrideHours, found, err := reads.OverrideHoursForDate(ctx, req.CanteenID, slot.Date()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		} else if found {
			effective = overrideHours
		}
		if !effective.CoverInterval(slot.StartMin(), slot.EndMin()) {
			return ErrCanteenClosed
		}
		meal, _ = effective.MealFor(slot.StartMin())

		restrictions, err := reads.RestrictionsInForce(ctx, studentID, now)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		for _, restr := range restrictions {
			if restr.InForceAt(now) {
				return ErrStudentRestricted
			}
		}

		active, err := reads.ActiveReservationByStudent(ctx, studentID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if active != nil {
			return ErrActiveReservationExists
		}

		count, err := reads.CountOverlappingActive(ctx, req.CanteenID, slot)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if count >= canteenSnap.Capacity {
			return ErrSlotFull
		}

		res := reservation.NewReservation(studentID, req.CanteenID, slot)
		reservationID, err = tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrActiveReservationExists
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrCanteenNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation admitted",
		"reservation_id", reservationID, "student_id", studentID, "meal", meal.String())

	view, err := r.reservationQueries.GetByID(ctx, reservationID)
	if err != nil {
		slog.Error("reservation created but view fetch failed",
			"reservation_id", reservationID, "error", err.Error())
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

// Cancel transitions the caller's active reservation to cancelled.
// Admins may cancel any reservation. The row is locked FOR UPDATE so a
// concurrent sweep cannot complete it mid-transition.
func (r *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, callerID uuid.UUID, callerIsAdmin bool) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if snap.StudentID != callerID && !callerIsAdmin {
			return ErrNotReservationOwner
		}

		if reservation.Status(snap.Status).IsTerminal() {
			return ErrReservationNotCancellable
		}

		// The transition is guarded on the current status; losing it
		// means the sweeper completed the reservation in between.
		err = tx.Reservations().UpdateStatus(ctx, tx.DB(), reservationID, reservation.StatusActive, reservation.StatusCancelled)
		if err != nil {
			if infra.IsKind(err, infra.KindConditionFailed) {
				return ErrReservationNotCancellable
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
}
