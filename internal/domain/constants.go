package domain

// Progression defaults
const (
	// DefaultPerTapYield is the per-tap yield of a player with no upgrades
	DefaultPerTapYield int64 = 1

	// CoinsPerLevel is the lifetime earnings needed for each level
	CoinsPerLevel int64 = 1000

	// SnapshotVersion is the current persisted snapshot schema version
	SnapshotVersion = 1

	// MaxTapsPerRequest bounds batched taps sent in a single intent
	MaxTapsPerRequest = 500

	// DefaultPlayerKey is the storage key used by single-player clients
	DefaultPlayerKey = "emoji_kombat_user"
)

// Upgrade ids shipped in the default catalog
const (
	UpgradeTapPower        = "tap-power"
	UpgradeAutoMiner       = "auto-miner"
	UpgradeBoostMultiplier = "boost-multiplier"
	UpgradeSocialPower     = "social-power"
)

// Earning sources, used for metrics labels and logs
const (
	SourceTap      = "tap"
	SourceTask     = "task"
	SourceMinigame = "minigame"
	SourceIdle     = "idle"
)
