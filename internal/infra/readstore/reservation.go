package readstore

import (
	"context"
	"fmt"

	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	pool db.DBTX
}

func NewReservationReadStore(pool db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{pool: pool}
}

const reservationViewQuery = `
	SELECT r.id, r.student_id, s.email, r.canteen_id, c.name,
	       r.slot_date, r.start_min, r.duration_min, r.status,
	       r.created_at, r.updated_at
	FROM reservations r
	JOIN students s ON s.id = r.student_id
	JOIN canteens c ON c.id = r.canteen_id`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	q := reservationViewQuery + ` WHERE r.id = $1`
	return s.scanView(ctx, q, id)
}

func (s *ReservationReadStore) FindActiveByStudent(ctx context.Context, studentID uuid.UUID) (*queries.ReservationView, error) {
	q := reservationViewQuery + ` WHERE r.student_id = $1 AND r.status = 'active'`
	return s.scanView(ctx, q, studentID)
}

func (s *ReservationReadStore) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*queries.ReservationListItem, error) {
	const q = `
		SELECT r.id, r.canteen_id, c.name,
		       r.slot_date, r.start_min, r.duration_min, r.status, r.created_at
		FROM reservations r
		JOIN canteens c ON c.id = r.canteen_id
		WHERE r.student_id = $1
		ORDER BY r.slot_date DESC, r.start_min DESC`

	rows, err := s.pool.Query(ctx, q, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var (
			item      queries.ReservationListItem
			slotDate  pgtype.Date
			startMin  int32
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.CanteenID, &item.CanteenName,
			&slotDate, &startMin, &item.DurationMin, &item.Status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.Date = pgconv.DateFromPgtype(slotDate)
		item.StartTime = minutesToClock(startMin)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return items, nil
}

func (s *ReservationReadStore) scanView(ctx context.Context, q string, arg any) (*queries.ReservationView, error) {
	var (
		view      queries.ReservationView
		slotDate  pgtype.Date
		startMin  int32
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, q, arg).Scan(
		&view.ID, &view.StudentID, &view.StudentEmail, &view.CanteenID, &view.CanteenName,
		&slotDate, &startMin, &view.DurationMin, &view.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	view.Date = pgconv.DateFromPgtype(slotDate)
	view.StartTime = minutesToClock(startMin)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

func minutesToClock(min int32) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
