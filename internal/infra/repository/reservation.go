package repository

import (
	"context"
	"time"

	"canteen-reservation/internal/domain/reservation"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

// Create inserts exactly one row. The partial unique index on
// (student_id) WHERE status='active' makes a lost same-student race
// surface here as a duplicate-key error.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const q = `
		INSERT INTO reservations (id, student_id, canteen_id, slot_date, start_min, duration_min, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		res.ID(),
		res.StudentID(),
		res.CanteenID(),
		pgconv.DateToPgtype(res.Slot().Date()),
		res.Slot().StartMin(),
		res.Slot().DurationMin(),
		res.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const q = `
		SELECT id, student_id, canteen_id, slot_date, start_min, duration_min, status
		FROM reservations
		WHERE id = $1
		FOR UPDATE`

	snap, err := scanReservationSnapshot(tx.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	return snap, nil
}

// UpdateStatus transitions a row only while it still holds the from
// status. Zero affected rows on an existing reservation means the
// status changed underneath the caller.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to reservation.Status) error {
	const q = `UPDATE reservations SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`

	tag, err := tx.Exec(ctx, q, id, from.String(), to.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		const exists = `SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`
		var found bool
		if scanErr := tx.QueryRow(ctx, exists, id).Scan(&found); scanErr != nil {
			return infra.WrapRepoErr("failed to check reservation existence", scanErr)
		}
		if !found {
			return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
		}
		return infra.WrapRepoErr("reservation left the expected status", nil, infra.KindConditionFailed)
	}

	return nil
}

func (r *ReservationRepository) FindActiveByCanteenDates(ctx context.Context, tx db.DBTX, canteenID uuid.UUID, startDate, endDate time.Time) ([]*shared.ReservationSnapshot, error) {
	const q = `
		SELECT id, student_id, canteen_id, slot_date, start_min, duration_min, status
		FROM reservations
		WHERE canteen_id = $1
		  AND status = 'active'
		  AND slot_date BETWEEN $2 AND $3
		FOR UPDATE`

	rows, err := tx.Query(ctx, q, canteenID, pgconv.DateToPgtype(startDate), pgconv.DateToPgtype(endDate))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find active reservations by canteen", err)
	}
	defer rows.Close()

	var result []*shared.ReservationSnapshot
	for rows.Next() {
		snap, scanErr := scanReservationSnapshot(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

func (r *ReservationRepository) CancelByIDs(ctx context.Context, tx db.DBTX, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	const q = `
		UPDATE reservations
		SET status = 'cancelled', updated_at = now()
		WHERE id = ANY($1) AND status = 'active'`

	tag, err := tx.Exec(ctx, q, ids)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel reservations", err)
	}

	return tag.RowsAffected(), nil
}

// CompleteExpired transitions active reservations whose slot has ended
// to completed. Terminal rows are never touched.
func (r *ReservationRepository) CompleteExpired(ctx context.Context, tx db.DBTX, now time.Time) (int64, error) {
	const q = `
		UPDATE reservations
		SET status = 'completed', updated_at = now()
		WHERE status = 'active'
		  AND slot_date + make_interval(mins => start_min + duration_min) <= $1`

	tag, err := tx.Exec(ctx, q, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete expired reservations", err)
	}

	return tag.RowsAffected(), nil
}
