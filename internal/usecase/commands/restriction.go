package commands

import (
	"context"

	reqdto "canteen-reservation/internal/handler/dto/request"
	"canteen-reservation/internal/infra"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type RestrictionCommands interface {
	Create(ctx context.Context, req reqdto.CreateRestrictionRequest) (uuid.UUID, error)
}

type restrictionCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRestrictionCommands(uow shared.UnitOfWork) RestrictionCommands {
	return &restrictionCommandsImpl{uow: uow}
}

// Create records a penalty window for a student. Existing active
// reservations are untouched; restrictions only gate new admissions.
func (r *restrictionCommandsImpl) Create(ctx context.Context, req reqdto.CreateRestrictionRequest) (uuid.UUID, error) {
	restr, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Restrictions().Create(ctx, tx.DB(), restr)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return ErrStudentNotFound
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
