package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/EmojiKombat_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Progression event types
const (
	LevelUp          Type = domain.EventTypeLevelUp
	RankUp           Type = domain.EventTypeRankUp
	UpgradePurchased Type = domain.EventTypeUpgradePurchased
	TaskCompleted    Type = domain.EventTypeTaskCompleted
)

// Typed event payloads

// LevelUpPayloadV1 is published when a player's level increases
type LevelUpPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	OldLevel  int64  `json:"old_level"`
	NewLevel  int64  `json:"new_level"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// RankUpPayloadV1 is published when a player enters a new rank
type RankUpPayloadV1 struct {
	PlayerID    string `json:"player_id"`
	OldRank     string `json:"old_rank"`
	NewRank     string `json:"new_rank"`
	TotalEarned int64  `json:"total_earned"`
	Timestamp   int64  `json:"timestamp"`
}

// UpgradePurchasedPayloadV1 is published after a successful purchase
type UpgradePurchasedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	UpgradeID string `json:"upgrade_id"`
	Owned     int    `json:"owned"`
	Cost      int64  `json:"cost"`
	Timestamp int64  `json:"timestamp"`
}

// TaskCompletedPayloadV1 is published the first time a task reward is granted
type TaskCompletedPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	TaskID    string `json:"task_id"`
	Reward    int64  `json:"reward"`
	Timestamp int64  `json:"timestamp"`
}

// NewLevelUpEvent creates a level up event
func NewLevelUpEvent(playerID string, oldLevel, newLevel int64, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			PlayerID:  playerID,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRankUpEvent creates a rank up event
func NewRankUpEvent(playerID, oldRank, newRank string, totalEarned int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RankUp,
		Payload: RankUpPayloadV1{
			PlayerID:    playerID,
			OldRank:     oldRank,
			NewRank:     newRank,
			TotalEarned: totalEarned,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewUpgradePurchasedEvent creates an upgrade purchased event
func NewUpgradePurchasedEvent(playerID, upgradeID string, owned int, cost int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UpgradePurchased,
		Payload: UpgradePurchasedPayloadV1{
			PlayerID:  playerID,
			UpgradeID: upgradeID,
			Owned:     owned,
			Cost:      cost,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewTaskCompletedEvent creates a task completed event
func NewTaskCompletedEvent(playerID, taskID string, reward int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TaskCompleted,
		Payload: TaskCompletedPayloadV1{
			PlayerID:  playerID,
			TaskID:    taskID,
			Reward:    reward,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously on the publishing goroutine.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
