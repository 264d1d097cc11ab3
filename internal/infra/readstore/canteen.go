package readstore

import (
	"context"

	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/pkg/pgconv"
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CanteenReadStore struct {
	pool db.DBTX
}

func NewCanteenReadStore(pool db.DBTX) *CanteenReadStore {
	return &CanteenReadStore{pool: pool}
}

func (s *CanteenReadStore) FindAll(ctx context.Context) ([]*queries.CanteenView, error) {
	const q = `
		SELECT id, name, location, capacity, created_at, updated_at
		FROM canteens
		ORDER BY name`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query canteens", err)
	}
	defer rows.Close()

	var views []*queries.CanteenView
	byID := make(map[uuid.UUID]*queries.CanteenView)
	for rows.Next() {
		view, err := scanCanteenView(rows.Scan)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
		byID[view.ID] = view
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate canteen rows", err)
	}
	if len(views) == 0 {
		return views, nil
	}

	const hq = `
		SELECT canteen_id, meal, start_min, end_min
		FROM canteen_working_hours
		ORDER BY canteen_id, start_min`

	hourRows, err := s.pool.Query(ctx, hq)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query working hours", err)
	}
	defer hourRows.Close()

	for hourRows.Next() {
		var (
			canteenID uuid.UUID
			meal      string
			startMin  int32
			endMin    int32
		)
		if err := hourRows.Scan(&canteenID, &meal, &startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hours row", err)
		}
		if view, ok := byID[canteenID]; ok {
			view.WorkingHours = append(view.WorkingHours, queries.WorkingHourView{
				Meal: meal,
				From: minutesToClock(startMin),
				To:   minutesToClock(endMin),
			})
		}
	}
	if err := hourRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working hours rows", err)
	}

	return views, nil
}

func (s *CanteenReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CanteenView, error) {
	const q = `
		SELECT id, name, location, capacity, created_at, updated_at
		FROM canteens
		WHERE id = $1`

	view, err := scanCanteenView(s.pool.QueryRow(ctx, q, id).Scan)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("canteen not found", err, infra.KindNotFound)
		}
		return nil, err
	}

	const hq = `
		SELECT meal, start_min, end_min
		FROM canteen_working_hours
		WHERE canteen_id = $1
		ORDER BY start_min`

	rows, err := s.pool.Query(ctx, hq, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query working hours", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			meal     string
			startMin int32
			endMin   int32
		)
		if err := rows.Scan(&meal, &startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hours row", err)
		}
		view.WorkingHours = append(view.WorkingHours, queries.WorkingHourView{
			Meal: meal,
			From: minutesToClock(startMin),
			To:   minutesToClock(endMin),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working hours rows", err)
	}

	return view, nil
}

func scanCanteenView(scan func(dest ...any) error) (*queries.CanteenView, error) {
	var (
		view      queries.CanteenView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := scan(&view.ID, &view.Name, &view.Location, &view.Capacity, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to scan canteen row", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
