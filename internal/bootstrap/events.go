package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/EmojiKombat_Go/internal/event"
	"github.com/osse101/EmojiKombat_Go/internal/metrics"
	"github.com/osse101/EmojiKombat_Go/internal/progression"
)

// InitializeEventSystem creates the event bus and subscribes the metrics
// collector and the progression event logger to it.
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	progression.RegisterEventLogger(bus)

	slog.Info(LogMsgEventSystemReady)
	return bus
}

// InitializePersister builds the snapshot writer. Snapshots that exhaust their
// retries are appended to deadLetterPath when it is set.
func InitializePersister(store *Storage, deadLetterPath string) (*progression.Persister, error) {
	cfg := progression.PersisterConfig{
		MaxRetries: PersisterMaxRetries,
		RetryDelay: PersisterRetryDelay,
	}

	if deadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetter, err)
		}
		dl, err := progression.NewDeadLetterWriter(deadLetterPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetter, err)
		}
		cfg.DeadLetter = dl
	}

	return progression.NewPersister(store.Progression, cfg), nil
}
