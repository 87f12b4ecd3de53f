package postgres

// SQL statements for the player_snapshots table
const (
	querySelectSnapshot = `SELECT snapshot FROM player_snapshots WHERE player_id = $1`

	// The generation guard keeps a late writer from replacing newer progress.
	queryUpsertSnapshot = `
		INSERT INTO player_snapshots (player_id, generation, snapshot, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (player_id) DO UPDATE SET
			generation = EXCLUDED.generation,
			snapshot   = EXCLUDED.snapshot,
			updated_at = NOW()
		WHERE player_snapshots.generation <= EXCLUDED.generation`

	queryDeleteSnapshot = `DELETE FROM player_snapshots WHERE player_id = $1`
)
