package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

func TestSnapshotCodec_RoundTrip(t *testing.T) {
	snap := domain.Snapshot{
		Version:        domain.SnapshotVersion,
		Generation:     12,
		Balance:        800,
		TotalEarned:    1810,
		TotalTaps:      55,
		OwnedUpgrades:  map[string]int{domain.UpgradeAutoMiner: 1},
		CompletedTasks: []string{"referral_1"},
		ReferralCount:  1,
		LastTickAt:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)

	got, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, *got)
}

func TestDecodeSnapshot_Corrupt(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"version":1,"balance":"lots","total_earned":0}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPersistenceFailure)
	assert.Contains(t, err.Error(), "corrupt snapshot")
}
