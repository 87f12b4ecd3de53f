package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/EmojiKombat_Go/internal/config"
	"github.com/osse101/EmojiKombat_Go/internal/database"
	"github.com/osse101/EmojiKombat_Go/internal/database/filestore"
	"github.com/osse101/EmojiKombat_Go/internal/database/memory"
	"github.com/osse101/EmojiKombat_Go/internal/database/postgres"
	"github.com/osse101/EmojiKombat_Go/internal/database/sqlite"
	"github.com/osse101/EmojiKombat_Go/internal/repository"
)

// Storage is the snapshot store selected by STORAGE_BACKEND
type Storage struct {
	Backend     string
	Progression repository.Progression
	Pinger      repository.Pinger

	close func() error
}

// Close releases the underlying connection or file handles
func (s *Storage) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// InitializeStorage opens the configured backend. Postgres migrations are
// applied first when DB_AUTO_MIGRATE is set; sqlite always migrates on open.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var storage *Storage

	switch cfg.StorageBackend {
	case config.BackendMemory:
		store := memory.New()
		storage = &Storage{Progression: store, Pinger: store}

	case config.BackendFile:
		if err := os.MkdirAll(cfg.DataDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
		}
		store := filestore.New(cfg.DataDir)
		storage = &Storage{Progression: store, Pinger: store}

	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
		}
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		storage = &Storage{Progression: db, Pinger: db, close: db.Close}

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.PoolConfig())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectPostgres, err)
		}
		if cfg.DBAutoMigrate {
			if err := database.MigratePostgres(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
			}
			slog.Info(LogMsgMigrationsApplied)
		}
		repo := postgres.NewProgressionRepository(pool)
		storage = &Storage{
			Progression: repo,
			Pinger:      repo,
			close: func() error {
				pool.Close()
				return nil
			},
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	storage.Backend = cfg.StorageBackend
	slog.Info(LogMsgStorageOpened, "backend", cfg.StorageBackend)
	return storage, nil
}
