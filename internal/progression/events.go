package progression

import (
	"context"

	"github.com/osse101/EmojiKombat_Go/internal/event"
	"github.com/osse101/EmojiKombat_Go/internal/logger"
)

// RegisterEventLogger subscribes a handler that logs player milestones
func RegisterEventLogger(bus event.Bus) {
	bus.Subscribe(event.LevelUp, logLevelUp)
	bus.Subscribe(event.RankUp, logRankUp)
}

func logLevelUp(ctx context.Context, evt event.Event) error {
	p, ok := evt.Payload.(event.LevelUpPayloadV1)
	if !ok {
		return nil
	}
	logger.FromContext(ctx).Info(LogMsgLevelUp,
		logger.AttrKeyPlayerID, p.PlayerID,
		"old_level", p.OldLevel,
		"new_level", p.NewLevel,
		"source", p.Source)
	return nil
}

func logRankUp(ctx context.Context, evt event.Event) error {
	p, ok := evt.Payload.(event.RankUpPayloadV1)
	if !ok {
		return nil
	}
	logger.FromContext(ctx).Info(LogMsgRankUp,
		logger.AttrKeyPlayerID, p.PlayerID,
		"old_rank", p.OldRank,
		"new_rank", p.NewRank,
		"total_earned", p.TotalEarned)
	return nil
}
