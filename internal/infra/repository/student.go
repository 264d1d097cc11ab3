package repository

import (
	"context"

	"canteen-reservation/internal/domain/student"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/infra/db"

	"github.com/google/uuid"
)

type StudentRepository struct{}

func NewStudentRepository() *StudentRepository {
	return &StudentRepository{}
}

// Create relies on the partial unique index on (email) WHERE is_active
// to reject duplicate signups.
func (r *StudentRepository) Create(ctx context.Context, tx db.DBTX, s *student.Student) (uuid.UUID, error) {
	const q = `
		INSERT INTO students (id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		s.ID(),
		s.Name().Value(),
		s.Email().Value(),
		s.PasswordHash(),
		s.Role().String(),
		s.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create student", err)
	}

	return id, nil
}

func (r *StudentRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, studentID uuid.UUID) error {
	const q = `UPDATE students SET last_login_at = now(), updated_at = now() WHERE id = $1`

	if _, err := tx.Exec(ctx, q, studentID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}

	return nil
}
