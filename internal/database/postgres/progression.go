package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/EmojiKombat_Go/internal/database"
	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/logger"
	"github.com/osse101/EmojiKombat_Go/internal/repository"
)

// ProgressionRepository stores snapshots as JSONB rows keyed by player id
type ProgressionRepository struct {
	pool *pgxpool.Pool
}

// NewProgressionRepository creates a new Postgres-backed snapshot store
func NewProgressionRepository(pool *pgxpool.Pool) *ProgressionRepository {
	return &ProgressionRepository{pool: pool}
}

var (
	_ repository.Progression = (*ProgressionRepository)(nil)
	_ repository.Pinger      = (*ProgressionRepository)(nil)
)

func (r *ProgressionRepository) LoadSnapshot(ctx context.Context, playerID string) (*domain.Snapshot, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, querySelectSnapshot, playerID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", domain.ErrPersistenceFailure, err)
	}
	return database.DecodeSnapshot(data)
}

func (r *ProgressionRepository) SaveSnapshot(ctx context.Context, playerID string, snap domain.Snapshot) error {
	data, err := database.EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, queryUpsertSnapshot, playerID, generationParam(snap.Generation), data)
	if err != nil {
		return fmt.Errorf("%w: failed to save snapshot: %v", domain.ErrPersistenceFailure, err)
	}
	if tag.RowsAffected() == 0 {
		logger.FromContext(ctx).Debug("Skipped stale snapshot", "player_id", playerID, "generation", snap.Generation)
	}
	return nil
}

func (r *ProgressionRepository) DeleteSnapshot(ctx context.Context, playerID string) error {
	if _, err := r.pool.Exec(ctx, queryDeleteSnapshot, playerID); err != nil {
		return fmt.Errorf("%w: failed to delete snapshot: %v", domain.ErrPersistenceFailure, err)
	}
	return nil
}

func (r *ProgressionRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// generationParam maps the unsigned generation onto BIGINT
func generationParam(gen uint64) int64 {
	if gen > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(gen)
}
