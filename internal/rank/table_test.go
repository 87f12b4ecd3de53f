package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

func TestRankFor(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name        string
		totalEarned int64
		want        string
	}{
		{"zero is rookie", 0, "Rookie"},
		{"just below veteran", 999, "Rookie"},
		{"veteran min is inclusive", 1000, "Veteran"},
		{"pro", 50_000, "Pro"},
		{"legendary upper edge", 999_999_999, "Legendary"},
		{"lord min", 1_000_000_000, "Lord"},
		{"far beyond lord", 9_000_000_000_000, "Lord"},
		{"negative treated as zero", -5, "Rookie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.RankFor(tt.totalEarned).Name)
		})
	}
}

func TestNextRankFor(t *testing.T) {
	table := DefaultTable()

	next, ok := table.NextRankFor(0)
	require.True(t, ok)
	assert.Equal(t, "Veteran", next.Name)

	next, ok = table.NextRankFor(150_000_000)
	require.True(t, ok)
	assert.Equal(t, "Lord", next.Name)

	_, ok = table.NextRankFor(2_000_000_000)
	assert.False(t, ok, "top rank has no next rank")
}

func TestProgressFraction(t *testing.T) {
	table := DefaultTable()

	assert.InDelta(t, 0.0, table.ProgressFraction(0), 1e-9)
	assert.InDelta(t, 0.5, table.ProgressFraction(500), 1e-9)
	assert.InDelta(t, 0.0, table.ProgressFraction(1000), 1e-9)
	assert.InDelta(t, 0.5, table.ProgressFraction(5500), 1e-9)
	assert.Equal(t, 1.0, table.ProgressFraction(5_000_000_000), "top rank reports full progress")
}

func TestRankMonotonicity(t *testing.T) {
	table := DefaultTable()
	samples := []int64{0, 1, 999, 1000, 9_999, 10_000, 123_456, 1_000_000, 55_555_555, 100_000_000, 999_999_999, 1_000_000_000, 1 << 50}

	for i := 1; i < len(samples); i++ {
		assert.LessOrEqual(t, table.Position(samples[i-1]), table.Position(samples[i]),
			"rank for %d must not be above rank for %d", samples[i-1], samples[i])
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		totalEarned int64
		want        int64
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{2500, 3},
		{-10, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.totalEarned), "level(%d)", tt.totalEarned)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		thresholds []domain.RankThreshold
		wantErr    string
	}{
		{
			name:       "empty",
			thresholds: nil,
			wantErr:    "empty",
		},
		{
			name: "does not start at zero",
			thresholds: []domain.RankThreshold{
				{Name: "A", MinEarnings: 1, MaxEarnings: domain.NoMaxEarnings},
			},
			wantErr: "must start at 0",
		},
		{
			name: "gap between ranks",
			thresholds: []domain.RankThreshold{
				{Name: "A", MinEarnings: 0, MaxEarnings: 100},
				{Name: "B", MinEarnings: 150, MaxEarnings: domain.NoMaxEarnings},
			},
			wantErr: "gap or overlap",
		},
		{
			name: "overlap between ranks",
			thresholds: []domain.RankThreshold{
				{Name: "A", MinEarnings: 0, MaxEarnings: 200},
				{Name: "B", MinEarnings: 150, MaxEarnings: domain.NoMaxEarnings},
			},
			wantErr: "gap or overlap",
		},
		{
			name: "bounded last rank",
			thresholds: []domain.RankThreshold{
				{Name: "A", MinEarnings: 0, MaxEarnings: 100},
			},
			wantErr: "must be unbounded",
		},
		{
			name: "duplicate names",
			thresholds: []domain.RankThreshold{
				{Name: "A", MinEarnings: 0, MaxEarnings: 100},
				{Name: "A", MinEarnings: 100, MaxEarnings: domain.NoMaxEarnings},
			},
			wantErr: "duplicate name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.thresholds)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedCatalog)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.NoError(t, Validate(DefaultThresholds()))
}

func TestMustNewTable_PanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() {
		MustNewTable([]domain.RankThreshold{{Name: "A", MinEarnings: 5, MaxEarnings: 1}})
	})
}
