package worker

import (
	"context"
	"log/slog"
	"time"

	"canteen-reservation/internal/pkg/config"
	"canteen-reservation/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

// Sweeper periodically completes active reservations whose slot has
// ended. It is supporting infrastructure around the admission core and
// holds no state of its own.
type Sweeper struct {
	cron     *cron.Cron
	sweep    commands.SweepCommands
	schedule string
	enabled  bool
}

func NewSweeper(cfg config.Config, sweep commands.SweepCommands) *Sweeper {
	return &Sweeper{
		cron:     cron.New(),
		sweep:    sweep,
		schedule: cfg.Sweep.Schedule,
		enabled:  cfg.Sweep.Enabled,
	}
}

func (s *Sweeper) Start() error {
	if !s.enabled {
		slog.Info("reservation sweeper disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("reservation sweeper started", "schedule", s.schedule)
	return nil
}

// Stop waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("reservation sweeper stopped")
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	completed, err := s.sweep.CompleteExpired(ctx)
	if err != nil {
		slog.Error("reservation sweep failed", "error", err.Error())
		return
	}
	if completed > 0 {
		slog.Info("reservation sweep completed expired slots", "count", completed)
	}
}
