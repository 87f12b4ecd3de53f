package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Background Work
// =============================================================================

const (
	// AccrualWorkers is the number of pool workers running scheduled jobs
	AccrualWorkers = 2

	// AccrualQueueSize bounds jobs waiting for a worker
	AccrualQueueSize = 16

	// PersisterMaxRetries is how often a failed snapshot write is retried
	PersisterMaxRetries = 5

	// PersisterRetryDelay is the base delay between write retries (exponential backoff)
	PersisterRetryDelay = 200 * time.Millisecond
)

// =============================================================================
// Log Messages
// =============================================================================

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting EmojiKombat"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgStorageOpened       = "Storage opened"
	LogMsgMigrationsApplied   = "Database migrations applied"
	LogMsgCatalogLoaded       = "Catalog loaded"
	LogMsgCatalogDefault      = "No catalog file configured, using built-in catalog"
	LogMsgEventSystemReady    = "Event system initialized"
	LogMsgAccrualScheduled    = "Idle accrual scheduled"
)

// Error messages for startup
const (
	ErrMsgUnknownBackend         = "unknown storage backend"
	ErrMsgFailedCreateDataDir    = "failed to create data directory"
	ErrMsgFailedOpenSQLite       = "failed to open sqlite store"
	ErrMsgFailedConnectPostgres  = "failed to connect to postgres"
	ErrMsgFailedMigrate          = "failed to apply migrations"
	ErrMsgFailedLoadCatalog      = "failed to load catalog"
	ErrMsgFailedCreateDeadLetter = "failed to create dead-letter file"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShutdownStarted  = "Shutdown started"
	LogMsgShutdownStep     = "Shutdown step complete"
	LogMsgShutdownStepFail = "Shutdown step failed"
	LogMsgShutdownComplete = "Shutdown complete"
)

// Shutdown step names, in the order they run
const (
	StepHTTPServer  = "http_server"
	StepScheduler   = "scheduler"
	StepWorkerPool  = "worker_pool"
	StepProgression = "progression"
	StepStorage     = "storage"
)
