package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "kombat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func snapshotAt(gen uint64, balance int64) domain.Snapshot {
	return domain.Snapshot{
		Version:       domain.SnapshotVersion,
		Generation:    gen,
		Balance:       balance,
		TotalEarned:   balance,
		OwnedUpgrades: map[string]int{domain.UpgradeAutoMiner: 3},
		LastTickAt:    time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDB_LoadMissing(t *testing.T) {
	db := newTestDB(t)

	snap, err := db.LoadSnapshot(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestDB_SaveLoad(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	want := snapshotAt(4, 250)
	require.NoError(t, db.SaveSnapshot(ctx, "p1", want))

	got, err := db.LoadSnapshot(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestDB_GenerationGuard(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveSnapshot(ctx, "p1", snapshotAt(5, 500)))
	require.NoError(t, db.SaveSnapshot(ctx, "p1", snapshotAt(4, 1)))
	require.NoError(t, db.SaveSnapshot(ctx, "p1", snapshotAt(5, 501)), "same generation overwrites")

	got, err := db.LoadSnapshot(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got.Generation)
	assert.Equal(t, int64(501), got.Balance)
}

func TestDB_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveSnapshot(ctx, "p1", snapshotAt(1, 10)))
	require.NoError(t, db.DeleteSnapshot(ctx, "p1"))

	got, err := db.LoadSnapshot(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, db.SaveSnapshot(ctx, "p1", snapshotAt(1, 10)), "fresh save after delete")
}

func TestDB_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kombat.db")
	ctx := context.Background()

	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.SaveSnapshot(ctx, domain.DefaultPlayerKey, snapshotAt(2, 77)))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	got, err := db.LoadSnapshot(ctx, domain.DefaultPlayerKey)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(77), got.Balance)
	assert.NoError(t, db.Ping(ctx))
}
