package metrics

import (
	"context"

	"github.com/osse101/EmojiKombat_Go/internal/event"
	"github.com/osse101/EmojiKombat_Go/internal/logger"
)

// EventMetricsCollector subscribes to progression events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every progression event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{event.LevelUp, event.RankUp, event.UpgradePurchased, event.TaskCompleted} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates metrics from a typed payload
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.LevelUpPayloadV1:
		LevelUps.Add(float64(p.NewLevel - p.OldLevel))
	case event.RankUpPayloadV1:
		RankUps.WithLabelValues(p.NewRank).Inc()
	case event.UpgradePurchasedPayloadV1:
		UpgradesPurchased.WithLabelValues(p.UpgradeID).Inc()
		CoinsSpent.Add(float64(p.Cost))
	case event.TaskCompletedPayloadV1:
		TasksCompleted.WithLabelValues(p.TaskID).Inc()
	default:
		logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type)
	}
	return nil
}
