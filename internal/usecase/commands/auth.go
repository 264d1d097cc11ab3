package commands

import (
	"context"
	"log/slog"

	"canteen-reservation/internal/domain/student"
	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/pkg/jwt"
	"canteen-reservation/internal/pkg/password"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrStudentInactive        = errs.New("student inactive")
	ErrAuthenticationFailed   = errs.New("authentication failed")
	ErrTokenGeneration        = errs.New("token generation failed")
	ErrTokenValidation        = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	StudentID uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

// Signup registers a student account. Email uniqueness is enforced by
// the store; a duplicate surfaces as Conflict.
func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (uuid.UUID, error) {
	name, creds, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.HashPassword(creds.Password.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newStudent := student.NewStudent(name, creds.Email, hash, student.RoleStudent)

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Students().Create(ctx, tx.DB(), newStudent)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return ErrEmailAlreadyRegistered
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	creds, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	snap, err := a.validateStudent(ctx, creds)
	if err != nil {
		return nil, err
	}

	role, err := student.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.generateTokenPair(snap.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Students().UpdateLastLogin(ctx, tx.DB(), snap.ID); updateErr != nil {
			slog.Warn("failed to update last login", "student_id", snap.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// Login already succeeded; the bookkeeping write is not critical.
		slog.Warn("transaction failed during login", "student_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{StudentID: snap.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := student.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	snap, err := a.uow.CommandReads().StudentByID(ctx, claims.StudentID)
	if err != nil {
		return nil, ErrStudentNotFound
	}
	if !snap.IsActive {
		return nil, ErrStudentInactive
	}

	return a.generateTokenPair(claims.StudentID, role)
}

func (a *authCommandsImpl) validateStudent(ctx context.Context, creds student.Credentials) (*shared.StudentSnapshot, error) {
	snap, err := a.uow.CommandReads().StudentByEmail(ctx, creds.Email.Value())
	if err != nil {
		// Same error as a password mismatch to prevent account enumeration.
		return nil, ErrInvalidCredentials
	}
	if !snap.IsActive {
		return nil, ErrStudentInactive
	}

	if err := password.ComparePassword(snap.PasswordHash, creds.Password.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return snap, nil
}

func (a *authCommandsImpl) generateTokenPair(studentID uuid.UUID, role student.Role) (*TokenPair, error) {
	access, err := a.jwtService.GenerateAccessToken(studentID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refresh, err := a.jwtService.GenerateRefreshToken(studentID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
