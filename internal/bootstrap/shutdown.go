package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/EmojiKombat_Go/internal/progression"
	"github.com/osse101/EmojiKombat_Go/internal/scheduler"
	"github.com/osse101/EmojiKombat_Go/internal/server"
	"github.com/osse101/EmojiKombat_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	Pool               *worker.Pool
	ProgressionService progression.Service
	Storage            *Storage
}

type shutdownStep struct {
	name string
	run  func(context.Context) error
}

// steps lists the non-nil components in dependency order: stop intake, stop
// accrual ticks, save sessions through the persister, then release storage.
func (c ShutdownComponents) steps() []shutdownStep {
	var steps []shutdownStep
	add := func(name string, run func(context.Context) error) {
		steps = append(steps, shutdownStep{name: name, run: run})
	}

	if c.Server != nil {
		add(StepHTTPServer, c.Server.Stop)
	}
	if c.Scheduler != nil {
		add(StepScheduler, func(context.Context) error { c.Scheduler.Stop(); return nil })
	}
	if c.Pool != nil {
		add(StepWorkerPool, func(context.Context) error { c.Pool.Stop(); return nil })
	}
	if c.ProgressionService != nil {
		add(StepProgression, c.ProgressionService.Shutdown)
	}
	if c.Storage != nil {
		add(StepStorage, func(context.Context) error { return c.Storage.Close() })
	}
	return steps
}

// GracefulShutdown runs every step even when an earlier one fails and
// returns the failures joined.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) error {
	slog.Info(LogMsgShutdownStarted)

	var errs []error
	for _, step := range components.steps() {
		start := time.Now()
		if err := step.run(ctx); err != nil {
			slog.Error(LogMsgShutdownStepFail, "step", step.name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", step.name, err))
			continue
		}
		slog.Debug(LogMsgShutdownStep, "step", step.name, "took", time.Since(start))
	}

	slog.Info(LogMsgShutdownComplete, "failed_steps", len(errs))
	return errors.Join(errs...)
}
