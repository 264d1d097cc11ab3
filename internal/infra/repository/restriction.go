package repository

import (
	"context"

	"canteen-reservation/internal/domain/restriction"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RestrictionRepository struct{}

func NewRestrictionRepository() *RestrictionRepository {
	return &RestrictionRepository{}
}

func (r *RestrictionRepository) Create(ctx context.Context, tx db.DBTX, res *restriction.Restriction) (uuid.UUID, error) {
	const q = `
		INSERT INTO restrictions (id, student_id, reason, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		res.ID(),
		res.StudentID(),
		res.Reason(),
		pgconv.TimeToPgtype(res.StartsAt()),
		pgconv.TimeToPgtype(res.EndsAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create restriction", err)
	}

	return id, nil
}
