package response

import (
	"canteen-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthorizedStudentResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

func FromAuthorizedStudentView(v *queries.AuthorizedStudentView) *AuthorizedStudentResponse {
	return &AuthorizedStudentResponse{
		ID:       v.ID,
		Name:     v.Name,
		Email:    v.Email,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}
