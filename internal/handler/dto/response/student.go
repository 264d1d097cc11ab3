package response

import (
	"time"

	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type StudentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromStudentView(v *queries.StudentView) *StudentResponse {
	return &StudentResponse{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Role:      v.Role,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
	}
}
