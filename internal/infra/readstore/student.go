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

type StudentReadStore struct {
	pool db.DBTX
}

func NewStudentReadStore(pool db.DBTX) *StudentReadStore {
	return &StudentReadStore{pool: pool}
}

func (s *StudentReadStore) FindAll(ctx context.Context) ([]*queries.StudentView, error) {
	const q = `
		SELECT id, name, email, role, is_active, created_at
		FROM students
		ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query students", err)
	}
	defer rows.Close()

	var views []*queries.StudentView
	for rows.Next() {
		var (
			view      queries.StudentView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &view.Email, &view.Role, &view.IsActive, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan student row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate student rows", err)
	}

	return views, nil
}

func (s *StudentReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedStudentView, error) {
	const q = `
		SELECT id, name, email, role, is_active
		FROM students
		WHERE id = $1`

	var view queries.AuthorizedStudentView
	err := s.pool.QueryRow(ctx, q, id).Scan(&view.ID, &view.Name, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("student not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find student", err)
	}

	return &view, nil
}
