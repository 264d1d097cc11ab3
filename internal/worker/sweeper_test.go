//go:build unit

package worker

import (
	"errors"
	"testing"

	"canteen-reservation/internal/pkg/config"
	commandsmock "canteen-reservation/tests/mock/commands"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSweeperConfig(enabled bool) config.Config {
	cfg := config.NewTestConfig()
	cfg.Sweep.Enabled = enabled
	cfg.Sweep.Schedule = "@every 1h"
	return cfg
}

func TestSweeperRun(t *testing.T) {
	t.Run("invokes the sweep command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweep := commandsmock.NewMockSweepCommands(ctrl)
		sweep.EXPECT().CompleteExpired(gomock.Any()).Return(int64(3), nil).Times(1)

		s := NewSweeper(newSweeperConfig(true), sweep)
		s.run()
	})

	t.Run("a failed sweep does not panic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweep := commandsmock.NewMockSweepCommands(ctrl)
		sweep.EXPECT().CompleteExpired(gomock.Any()).Return(int64(0), errors.New("db down")).Times(1)

		s := NewSweeper(newSweeperConfig(true), sweep)
		s.run()
	})
}

func TestSweeperLifecycle(t *testing.T) {
	t.Run("disabled sweeper never schedules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweep := commandsmock.NewMockSweepCommands(ctrl)

		s := NewSweeper(newSweeperConfig(false), sweep)
		require.NoError(t, s.Start())
		s.Stop()
	})

	t.Run("rejects a malformed schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweep := commandsmock.NewMockSweepCommands(ctrl)

		cfg := newSweeperConfig(true)
		cfg.Sweep.Schedule = "not-a-schedule"
		s := NewSweeper(cfg, sweep)
		require.Error(t, s.Start())
	})

	t.Run("starts and stops cleanly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sweep := commandsmock.NewMockSweepCommands(ctrl)

		s := NewSweeper(newSweeperConfig(true), sweep)
		require.NoError(t, s.Start())
		s.Stop()
	})
}
