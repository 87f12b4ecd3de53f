package domain

// Event type constants used for event bus subscriptions and metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "player.level_up")
const (
	// EventTypeLevelUp is published when a player's derived level increases
	EventTypeLevelUp = "player.level_up"

	// EventTypeRankUp is published when a player reaches a new rank
	EventTypeRankUp = "player.rank_up"

	// EventTypeUpgradePurchased is published after a successful upgrade purchase
	EventTypeUpgradePurchased = "upgrade.purchased"

	// EventTypeTaskCompleted is published the first time a task reward is granted
	EventTypeTaskCompleted = "task.completed"
)
