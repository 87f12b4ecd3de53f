package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/EmojiKombat_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	levelsBefore := testutil.ToFloat64(LevelUps)
	boughtBefore := testutil.ToFloat64(UpgradesPurchased.WithLabelValues("auto-miner"))
	spentBefore := testutil.ToFloat64(CoinsSpent)
	ranksBefore := testutil.ToFloat64(RankUps.WithLabelValues("Pro"))

	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent("p1", 3, 5, "task")))
	require.NoError(t, bus.Publish(ctx, event.NewUpgradePurchasedEvent("p1", "auto-miner", 1, 200)))
	require.NoError(t, bus.Publish(ctx, event.NewRankUpEvent("p1", "Veteran", "Pro", 10_000)))

	assert.Equal(t, levelsBefore+2, testutil.ToFloat64(LevelUps))
	assert.Equal(t, boughtBefore+1, testutil.ToFloat64(UpgradesPurchased.WithLabelValues("auto-miner")))
	assert.Equal(t, spentBefore+200, testutil.ToFloat64(CoinsSpent))
	assert.Equal(t, ranksBefore+1, testutil.ToFloat64(RankUps.WithLabelValues("Pro")))
}
