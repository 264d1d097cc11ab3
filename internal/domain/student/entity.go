package student

import (
	"time"

	"github.com/google/uuid"
)

// Student entity. Reservation flows only read it; mutation is limited
// to registration and account administration.
type Student struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewStudent(name Name, email Email, passwordHash string, role Role) *Student {
	return &Student{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructStudent(
	id uuid.UUID,
	name Name,
	email Email,
	passwordHash string,
	role Role,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Student {
	return &Student{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Student) ID() uuid.UUID        { return s.id }
func (s *Student) Name() Name           { return s.name }
func (s *Student) Email() Email         { return s.email }
func (s *Student) PasswordHash() string { return s.passwordHash }
func (s *Student) Role() Role           { return s.role }
func (s *Student) IsActive() bool       { return s.isActive }
func (s *Student) CreatedAt() time.Time { return s.createdAt }
func (s *Student) UpdatedAt() time.Time { return s.updatedAt }

func (s *Student) IsAdmin() bool {
	return s.role == RoleAdmin
}
