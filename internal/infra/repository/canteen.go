package repository

import (
	"context"

	"canteen-reservation/internal/domain/canteen"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CanteenRepository struct{}

func NewCanteenRepository() *CanteenRepository {
	return &CanteenRepository{}
}

func (r *CanteenRepository) Create(ctx context.Context, tx db.DBTX, c *canteen.Canteen) (uuid.UUID, error) {
	const insertCanteen = `
		INSERT INTO canteens (id, name, location, capacity)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertCanteen, c.ID(), c.Name(), c.Location(), c.Capacity().Value()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create canteen", err)
	}

	const insertHours = `
		INSERT INTO canteen_working_hours (canteen_id, meal, start_min, end_min)
		VALUES ($1, $2, $3, $4)`

	for _, h := range c.WorkingHours() {
		if _, err := tx.Exec(ctx, insertHours, id, h.Meal().String(), h.From().Minutes(), h.To().Minutes()); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create canteen working hours", err)
		}
	}

	return id, nil
}

// Update rewrites the row and replaces the full working-hours set;
// the entity always carries the complete set of windows.
func (r *CanteenRepository) Update(ctx context.Context, tx db.DBTX, c *canteen.Canteen) error {
	const updateCanteen = `
		UPDATE canteens
		SET name = $2, location = $3, capacity = $4, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, updateCanteen, c.ID(), c.Name(), c.Location(), c.Capacity().Value())
	if err != nil {
		return infra.WrapRepoErr("failed to update canteen", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("canteen not found", nil, infra.KindNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM canteen_working_hours WHERE canteen_id = $1`, c.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear canteen working hours", err)
	}

	const insertHours = `
		INSERT INTO canteen_working_hours (canteen_id, meal, start_min, end_min)
		VALUES ($1, $2, $3, $4)`

	for _, h := range c.WorkingHours() {
		if _, err := tx.Exec(ctx, insertHours, c.ID(), h.Meal().String(), h.From().Minutes(), h.To().Minutes()); err != nil {
			return infra.WrapRepoErr("failed to update canteen working hours", err)
		}
	}

	return nil
}

func (r *CanteenRepository) CreateOverride(ctx context.Context, tx db.DBTX, o *canteen.ScheduleOverride) (uuid.UUID, error) {
	const insertOverride = `
		INSERT INTO canteen_schedule_overrides (id, canteen_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertOverride,
		o.ID(),
		o.CanteenID(),
		pgconv.DateToPgtype(o.StartDate()),
		pgconv.DateToPgtype(o.EndDate()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create schedule override", err)
	}

	const insertHours = `
		INSERT INTO canteen_override_hours (override_id, meal, start_min, end_min)
		VALUES ($1, $2, $3, $4)`

	for _, h := range o.Hours() {
		if _, err := tx.Exec(ctx, insertHours, id, h.Meal().String(), h.From().Minutes(), h.To().Minutes()); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create override hours", err)
		}
	}

	return id, nil
}
