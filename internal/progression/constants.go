package progression

import "time"

// Persister defaults
const (
	DefaultSaveRetries    = 3
	DefaultSaveRetryDelay = 200 * time.Millisecond
)

// Dead-letter file format
const (
	DeadLetterSchemaVersion   = "1.0"
	DeadLetterFilePermissions = 0o644
)

// Log messages
const (
	LogMsgSessionLoaded         = "Loaded player session"
	LogMsgSessionCreated        = "Created new player session"
	LogMsgSessionLoadFailed     = "Failed to load snapshot, starting fresh"
	LogMsgSessionEvicted        = "Evicted player session"
	LogMsgIdleAccrual           = "Applied idle accrual"
	LogMsgPurchaseRejected      = "Upgrade purchase rejected"
	LogMsgLevelUp               = "Player leveled up"
	LogMsgRankUp                = "Player ranked up"
	LogMsgPublishFailed         = "Failed to publish event"
	LogMsgSaveFailed            = "Failed to save snapshot"
	LogMsgSaveRetry             = "Retrying snapshot save"
	LogMsgSnapshotDeadLettered  = "snapshot_dead_lettered"
	LogMsgDeleteFailed          = "Failed to delete snapshot"
	LogMsgPersisterStopped      = "Snapshot persister stopped"
	LogMsgShutdown              = "Shutting down progression service"
	LogMsgShutdownComplete      = "Progression service shutdown complete"
	LogMsgShutdownTimedOut      = "Progression service shutdown timed out"
	LogMsgAccrualFailed         = "Accrual run failed"
	LogMsgTaskCompleted         = "Task completed"
	LogMsgDeadLetterWriteFailed = "Failed to write dead letter entry"
)
