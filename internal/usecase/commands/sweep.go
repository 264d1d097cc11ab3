package commands

import (
	"context"

	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/pkg/errs"
	"canteen-reservation/internal/usecase/shared"
)

type SweepCommands interface {
	// CompleteExpired transitions active reservations whose slot end
	// has passed to completed and returns how many rows changed.
	CompleteExpired(ctx context.Context) (int64, error)
}

type sweepCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSweepCommands(uow shared.UnitOfWork, clock clock.Clock) SweepCommands {
	return &sweepCommandsImpl{uow: uow, clock: clock}
}

func (s *sweepCommandsImpl) CompleteExpired(ctx context.Context) (int64, error) {
	var completed int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var sweepErr error
		completed, sweepErr = tx.Reservations().CompleteExpired(ctx, tx.DB(), s.clock.Now())
		if sweepErr != nil {
			return errs.Mark(sweepErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return completed, nil
}
