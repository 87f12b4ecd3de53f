package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrateSQLite(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, MigrateSQLite(ctx, db))
	require.NoError(t, MigrateSQLite(ctx, db), "second run must be a no-op")

	var name string
	err = db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'player_snapshots'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "player_snapshots", name)
}

func TestMigrationsEmbedded(t *testing.T) {
	for _, dir := range []string{DialectDirPostgres, DialectDirSQLite} {
		entries, err := migrationsFS.ReadDir("migrations/" + dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries, "no migrations for %s", dir)
	}
}
