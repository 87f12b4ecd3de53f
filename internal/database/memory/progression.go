// Package memory provides a process-local snapshot store for tests and ephemeral servers.
package memory

import (
	"context"
	"sync"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/repository"
)

// Store holds snapshots in a map
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]domain.Snapshot
}

var (
	_ repository.Progression = (*Store)(nil)
	_ repository.Pinger      = (*Store)(nil)
)

// New creates an empty store
func New() *Store {
	return &Store{snapshots: make(map[string]domain.Snapshot)}
}

func (s *Store) LoadSnapshot(_ context.Context, playerID string) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snapshots[playerID]
	if !ok {
		return nil, nil
	}
	out := cloneSnapshot(snap)
	return &out, nil
}

func (s *Store) SaveSnapshot(_ context.Context, playerID string, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.snapshots[playerID]; ok && current.Generation > snap.Generation {
		return nil
	}
	s.snapshots[playerID] = cloneSnapshot(snap)
	return nil
}

func (s *Store) DeleteSnapshot(_ context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, playerID)
	return nil
}

func (s *Store) Ping(_ context.Context) error { return nil }

// Len reports how many players have a stored snapshot
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshots)
}

func cloneSnapshot(snap domain.Snapshot) domain.Snapshot {
	out := snap
	if snap.OwnedUpgrades != nil {
		out.OwnedUpgrades = make(map[string]int, len(snap.OwnedUpgrades))
		for k, v := range snap.OwnedUpgrades {
			out.OwnedUpgrades[k] = v
		}
	}
	if snap.CompletedTasks != nil {
		out.CompletedTasks = append([]string(nil), snap.CompletedTasks...)
	}
	return out
}
