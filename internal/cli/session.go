package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/EmojiKombat_Go/internal/catalog"
	"github.com/osse101/EmojiKombat_Go/internal/config"
	"github.com/osse101/EmojiKombat_Go/internal/database/filestore"
	"github.com/osse101/EmojiKombat_Go/internal/database/sqlite"
	"github.com/osse101/EmojiKombat_Go/internal/event"
	"github.com/osse101/EmojiKombat_Go/internal/progression"
	"github.com/osse101/EmojiKombat_Go/internal/repository"
)

const dirPermission = 0755

// session is one tapctl invocation: a service over the local store that is
// shut down, and therefore saved, before the command returns
type session struct {
	svc   progression.Service
	close func() error
}

func openSession(ctx context.Context, s Settings) (*session, error) {
	cat := catalog.Default()
	if s.CatalogPath != "" {
		var err error
		if cat, err = catalog.Load(s.CatalogPath); err != nil {
			return nil, err
		}
	}

	var (
		repo    repository.Progression
		closeFn = func() error { return nil }
	)
	switch s.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(s.SQLitePath), dirPermission); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		db, err := sqlite.Open(ctx, s.SQLitePath)
		if err != nil {
			return nil, err
		}
		repo, closeFn = db, db.Close
	default:
		repo = filestore.New(s.DataDir)
	}

	persister := progression.NewPersister(repo, progression.PersisterConfig{})
	svc := progression.NewService(cat, repo, persister, event.NewMemoryBus(), progression.Config{
		SessionCacheSize: 1,
		MaxIdleAccrual:   s.MaxIdle.Duration,
	})
	return &session{svc: svc, close: closeFn}, nil
}

// finish saves the session and releases the store
func (s *session) finish(ctx context.Context) error {
	err := s.svc.Shutdown(ctx)
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}
