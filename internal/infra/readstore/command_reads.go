package readstore

import (
	"context"
	"time"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/domain/restriction"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the write side's precondition checks. Bound to a
// transaction DBTX it reads under that transaction's locks; bound to
// the pool it reads with implicit transactions.
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

func (c *CommandReads) StudentByID(ctx context.Context, id uuid.UUID) (*shared.StudentSnapshot, error) {
	const q = `
		SELECT id, name, email, password_hash, role, is_active
		FROM students
		WHERE id = $1`

	return c.scanStudent(ctx, q, id)
}

func (c *CommandReads) StudentByEmail(ctx context.Context, email string) (*shared.StudentSnapshot, error) {
	const q = `
		SELECT id, name, email, password_hash, role, is_active
		FROM students
		WHERE email = $1 AND is_active`

	return c.scanStudent(ctx, q, email)
}

func (c *CommandReads) scanStudent(ctx context.Context, q string, arg any) (*shared.StudentSnapshot, error) {
	var snap shared.StudentSnapshot
	err := c.dbtx.QueryRow(ctx, q, arg).Scan(
		&snap.ID, &snap.Name, &snap.Email, &snap.PasswordHash, &snap.Role, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("student not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find student", err)
	}
	return &snap, nil
}

func (c *CommandReads) CanteenByID(ctx context.Context, id uuid.UUID) (*shared.CanteenSnapshot, error) {
	const q = `SELECT id, name, location, capacity FROM canteens WHERE id = $1`

	var snap shared.CanteenSnapshot
	err := c.dbtx.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Name, &snap.Location, &snap.Capacity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("canteen not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find canteen", err)
	}

	const hq = `
		SELECT meal, start_min, end_min
		FROM canteen_working_hours
		WHERE canteen_id = $1
		ORDER BY start_min`

	hours, err := c.queryWorkingHours(ctx, hq, id)
	if err != nil {
		return nil, err
	}
	snap.Hours = hours

	return &snap, nil
}

// OverrideHoursForDate returns the replacement hours when an override
// window covers the date; found is false otherwise.
func (c *CommandReads) OverrideHoursForDate(ctx context.Context, canteenID uuid.UUID, date time.Time) (canteen.WorkingHours, bool, error) {
	const q = `
		SELECT id
		FROM canteen_schedule_overrides
		WHERE canteen_id = $1 AND $2 BETWEEN start_date AND end_date
		LIMIT 1`

	var overrideID uuid.UUID
	err := c.dbtx.QueryRow(ctx, q, canteenID, pgconv.DateToPgtype(date)).Scan(&overrideID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to find schedule override", err)
	}

	const hq = `
		SELECT meal, start_min, end_min
		FROM canteen_override_hours
		WHERE override_id = $1
		ORDER BY start_min`

	hours, err := c.queryWorkingHours(ctx, hq, overrideID)
	if err != nil {
		return nil, false, err
	}

	return hours, true, nil
}

func (c *CommandReads) HasOverlappingOverride(ctx context.Context, canteenID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1
			FROM canteen_schedule_overrides
			WHERE canteen_id = $1 AND start_date <= $3 AND end_date >= $2
		)`

	var exists bool
	err := c.dbtx.QueryRow(ctx, q, canteenID, pgconv.DateToPgtype(startDate), pgconv.DateToPgtype(endDate)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check override overlap", err)
	}

	return exists, nil
}

func (c *CommandReads) RestrictionsInForce(ctx context.Context, studentID uuid.UUID, at time.Time) ([]*restriction.Restriction, error) {
	const q = `
		SELECT id, student_id, reason, starts_at, ends_at, created_at
		FROM restrictions
		WHERE student_id = $1 AND starts_at <= $2 AND ends_at > $2`

	rows, err := c.dbtx.Query(ctx, q, studentID, pgconv.TimeToPgtype(at))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find restrictions", err)
	}
	defer rows.Close()

	var result []*restriction.Restriction
	for rows.Next() {
		var (
			id        uuid.UUID
			sid       uuid.UUID
			reason    string
			startsAt  pgtype.Timestamptz
			endsAt    pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &sid, &reason, &startsAt, &endsAt, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan restriction row", err)
		}
		result = append(result, restriction.ReconstructRestriction(
			id, sid, reason,
			pgconv.TimeFromPgtype(startsAt),
			pgconv.TimeFromPgtype(endsAt),
			pgconv.TimeFromPgtype(createdAt),
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate restriction rows", err)
	}

	return result, nil
}

// ActiveReservationByStudent returns nil without error when the
// student has no active reservation; absence is a normal outcome here.
func (c *CommandReads) ActiveReservationByStudent(ctx context.Context, studentID uuid.UUID) (*shared.ReservationSnapshot, error) {
	const q = `
		SELECT id, student_id, canteen_id, slot_date, start_min, duration_min, status
		FROM reservations
		WHERE student_id = $1 AND status = 'active'
		LIMIT 1`

	snap, err := c.scanReservation(ctx, q, studentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return snap, nil
}

func (c *CommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const q = `
		SELECT id, student_id, canteen_id, slot_date, start_min, duration_min, status
		FROM reservations
		WHERE id = $1`

	return c.scanReservation(ctx, q, id)
}

func (c *CommandReads) CountOverlappingActive(ctx context.Context, canteenID uuid.UUID, slot reservation.Slot) (int, error) {
	const q = `
		SELECT count(*)
		FROM reservations
		WHERE canteen_id = $1
		  AND slot_date = $2
		  AND status = 'active'
		  AND start_min < $4
		  AND start_min + duration_min > $3`

	var count int
	err := c.dbtx.QueryRow(ctx, q, canteenID, pgconv.DateToPgtype(slot.Date()), slot.StartMin(), slot.EndMin()).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}

	return count, nil
}

func (c *CommandReads) scanReservation(ctx context.Context, q string, arg any) (*shared.ReservationSnapshot, error) {
	var (
		id          uuid.UUID
		studentID   uuid.UUID
		canteenID   uuid.UUID
		slotDate    pgtype.Date
		startMin    int32
		durationMin int32
		status      string
	)
	err := c.dbtx.QueryRow(ctx, q, arg).Scan(&id, &studentID, &canteenID, &slotDate, &startMin, &durationMin, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	return &shared.ReservationSnapshot{
		ID:        id,
		StudentID: studentID,
		CanteenID: canteenID,
		Slot:      reservation.ReconstructSlot(pgconv.DateFromPgtype(slotDate), int(startMin), int(durationMin)),
		Status:    status,
	}, nil
}

func (c *CommandReads) queryWorkingHours(ctx context.Context, q string, arg any) (canteen.WorkingHours, error) {
	rows, err := c.dbtx.Query(ctx, q, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query working hours", err)
	}
	defer rows.Close()

	var hours []canteen.WorkingHour
	for rows.Next() {
		var (
			meal     string
			startMin int32
			endMin   int32
		)
		if err := rows.Scan(&meal, &startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hours row", err)
		}

		h, err := buildWorkingHour(meal, int(startMin), int(endMin))
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt working hours row", err)
		}
		hours = append(hours, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working hours rows", err)
	}

	return canteen.WorkingHours(hours), nil
}

func buildWorkingHour(meal string, startMin, endMin int) (canteen.WorkingHour, error) {
	m, err := canteen.NewMeal(meal)
	if err != nil {
		return canteen.WorkingHour{}, err
	}
	from, err := canteen.TimeOfDayFromMinutes(startMin)
	if err != nil {
		return canteen.WorkingHour{}, err
	}
	to, err := canteen.TimeOfDayFromMinutes(endMin)
	if err != nil {
		return canteen.WorkingHour{}, err
	}
	return canteen.NewWorkingHour(m, from, to)
}
