package repository

import (
	"context"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

// Progression persists player snapshots keyed by player id.
// Snapshots are opaque blobs to the store; only the generation is inspected,
// and a store must never replace a snapshot with one of an older generation.
type Progression interface {
	// LoadSnapshot returns the stored snapshot, or nil with no error when the
	// player has none.
	LoadSnapshot(ctx context.Context, playerID string) (*domain.Snapshot, error)
	SaveSnapshot(ctx context.Context, playerID string, snap domain.Snapshot) error
	DeleteSnapshot(ctx context.Context, playerID string) error
}

// Pinger is implemented by stores that can report their health
type Pinger interface {
	Ping(ctx context.Context) error
}
