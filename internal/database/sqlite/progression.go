// Package sqlite keeps player snapshots in a single local database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/osse101/EmojiKombat_Go/internal/database"
	"github.com/osse101/EmojiKombat_Go/internal/domain"
	"github.com/osse101/EmojiKombat_Go/internal/repository"
)

const (
	querySelectSnapshot = `SELECT snapshot FROM player_snapshots WHERE player_id = ?`

	queryUpsertSnapshot = `
		INSERT INTO player_snapshots (player_id, generation, snapshot, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(player_id) DO UPDATE SET
			generation = excluded.generation,
			snapshot   = excluded.snapshot,
			updated_at = datetime('now')
		WHERE player_snapshots.generation <= excluded.generation`

	queryDeleteSnapshot = `DELETE FROM player_snapshots WHERE player_id = ?`
)

// DB is a sqlite-backed snapshot store
type DB struct {
	db *sql.DB
}

var (
	_ repository.Progression = (*DB)(nil)
	_ repository.Pinger      = (*DB)(nil)
)

// Open opens (creating if needed) the database at path and migrates it
func Open(ctx context.Context, path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// One connection serializes writers; sqlite allows a single writer anyway.
	sqlDB.SetMaxOpenConns(1)

	if err := database.MigrateSQLite(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return &DB{db: sqlDB}, nil
}

// Close releases the database file
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) LoadSnapshot(ctx context.Context, playerID string) (*domain.Snapshot, error) {
	var data string
	err := d.db.QueryRowContext(ctx, querySelectSnapshot, playerID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", domain.ErrPersistenceFailure, err)
	}
	return database.DecodeSnapshot([]byte(data))
}

func (d *DB) SaveSnapshot(ctx context.Context, playerID string, snap domain.Snapshot) error {
	data, err := database.EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	gen := int64(math.MaxInt64)
	if snap.Generation < math.MaxInt64 {
		gen = int64(snap.Generation)
	}
	if _, err := d.db.ExecContext(ctx, queryUpsertSnapshot, playerID, gen, string(data)); err != nil {
		return fmt.Errorf("%w: failed to save snapshot: %v", domain.ErrPersistenceFailure, err)
	}
	return nil
}

func (d *DB) DeleteSnapshot(ctx context.Context, playerID string) error {
	if _, err := d.db.ExecContext(ctx, queryDeleteSnapshot, playerID); err != nil {
		return fmt.Errorf("%w: failed to delete snapshot: %v", domain.ErrPersistenceFailure, err)
	}
	return nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}
