package request

import (
	"canteen-reservation/internal/domain/student"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *SignupRequest) ToDomain() (student.Name, student.Credentials, error) {
	name, err := student.NewName(r.Name)
	if err != nil {
		return student.Name{}, student.Credentials{}, err
	}
	creds, err := student.NewCredentials(r.Email, r.Password)
	if err != nil {
		return student.Name{}, student.Credentials{}, err
	}
	return name, creds, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (student.Credentials, error) {
	return student.NewCredentials(r.Email, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
