package usecase

import (
	"canteen-reservation/internal/domain/student"
	"canteen-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides access-token validation for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, student.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, student.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := student.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.StudentID, role, nil
}
