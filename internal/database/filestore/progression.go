// Package filestore keeps one JSON document per player under a data directory.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/osse101/EmojiKombat_Go/internal/database"
	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/repository"
	"github.com/osse101/EmojiKombat_Go/internal/utils"
)

const fileExt = ".json"

// Store is a directory of snapshot files named after the player key
type Store struct {
	dir string
	mu  sync.Mutex
}

var (
	_ repository.Progression = (*Store)(nil)
	_ repository.Pinger      = (*Store)(nil)
)

// New returns a store rooted at dir; the directory is created on first save
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file that holds playerID's snapshot
func (s *Store) Path(playerID string) (string, error) {
	if playerID == "" || strings.ContainsAny(playerID, `/\`) || playerID == "." || playerID == ".." {
		return "", fmt.Errorf("%w: invalid player key %q", domain.ErrInvalidInput, playerID)
	}
	return filepath.Join(s.dir, playerID+fileExt), nil
}

func (s *Store) LoadSnapshot(_ context.Context, playerID string) (*domain.Snapshot, error) {
	path, err := s.Path(playerID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", domain.ErrPersistenceFailure, path, err)
	}
	return database.DecodeSnapshot(data)
}

func (s *Store) SaveSnapshot(_ context.Context, playerID string, snap domain.Snapshot) error {
	path, err := s.Path(playerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var current domain.Snapshot
	found, err := utils.LoadJSON(path, &current)
	if err == nil && found && current.Generation > snap.Generation {
		return nil
	}
	if err := utils.SaveJSON(path, snap); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
	}
	return nil
}

func (s *Store) DeleteSnapshot(_ context.Context, playerID string) error {
	path, err := s.Path(playerID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: failed to remove %s: %v", domain.ErrPersistenceFailure, path, err)
	}
	return nil
}

// Ping checks that the data directory is usable
func (s *Store) Ping(_ context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: data directory %s: %v", domain.ErrPersistenceFailure, s.dir, err)
	}
	return nil
}
