package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

func snapshotAt(gen uint64, balance int64) domain.Snapshot {
	return domain.Snapshot{
		Version:     domain.SnapshotVersion,
		Generation:  gen,
		Balance:     balance,
		TotalEarned: balance,
		LastTickAt:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_SaveLoadDelete(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "data"))
	ctx := context.Background()

	snap, err := store.LoadSnapshot(ctx, domain.DefaultPlayerKey)
	require.NoError(t, err)
	assert.Nil(t, snap, "nothing saved yet")

	want := snapshotAt(3, 1234)
	want.OwnedUpgrades = map[string]int{domain.UpgradeTapPower: 1}
	require.NoError(t, store.SaveSnapshot(ctx, domain.DefaultPlayerKey, want))

	path, err := store.Path(domain.DefaultPlayerKey)
	require.NoError(t, err)
	assert.FileExists(t, path)

	got, err := store.LoadSnapshot(ctx, domain.DefaultPlayerKey)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	require.NoError(t, store.DeleteSnapshot(ctx, domain.DefaultPlayerKey))
	require.NoError(t, store.DeleteSnapshot(ctx, domain.DefaultPlayerKey))
	assert.NoFileExists(t, path)
}

func TestStore_StaleGenerationSkipped(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, "p1", snapshotAt(9, 900)))
	require.NoError(t, store.SaveSnapshot(ctx, "p1", snapshotAt(8, 1)))

	got, err := store.LoadSnapshot(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(900), got.Balance)
}

func TestStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "p1.json"), []byte(`{"version":1,"balance":"x"}`), 0o644))

	_, err := store.LoadSnapshot(context.Background(), "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)

	// A corrupt file never blocks a fresh save.
	require.NoError(t, store.SaveSnapshot(context.Background(), "p1", snapshotAt(1, 5)))
	got, err := store.LoadSnapshot(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Balance)
}

func TestStore_InvalidKeys(t *testing.T) {
	store := New(t.TempDir())

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		_, err := store.LoadSnapshot(context.Background(), key)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "key %q", key)
	}
}
