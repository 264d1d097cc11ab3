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

type RestrictionReadStore struct {
	pool db.DBTX
}

func NewRestrictionReadStore(pool db.DBTX) *RestrictionReadStore {
	return &RestrictionReadStore{pool: pool}
}

func (s *RestrictionReadStore) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]*queries.RestrictionView, error) {
	const q = `
		SELECT id, student_id, reason, starts_at, ends_at, created_at
		FROM restrictions
		WHERE student_id = $1
		ORDER BY starts_at DESC`

	rows, err := s.pool.Query(ctx, q, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query restrictions", err)
	}
	defer rows.Close()

	var views []*queries.RestrictionView
	for rows.Next() {
		var (
			view      queries.RestrictionView
			startsAt  pgtype.Timestamptz
			endsAt    pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.StudentID, &view.Reason, &startsAt, &endsAt, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan restriction row", err)
		}
		view.StartsAt = pgconv.TimeFromPgtype(startsAt)
		view.EndsAt = pgconv.TimeFromPgtype(endsAt)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate restriction rows", err)
	}

	return views, nil
}
