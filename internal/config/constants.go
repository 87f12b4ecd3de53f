package config

import "time"

// Storage backends selectable with STORAGE_BACKEND
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Defaults applied when a variable is unset or unparsable
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "emojikombat"
	DefaultVersion           = "dev"
	DefaultStorageBackend    = BackendFile
	DefaultDataDir           = "data"
	DefaultSQLitePath        = "data/emojikombat.db"
	DefaultDeadLetterPath    = "data/deadletter.jsonl"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultTickInterval      = time.Second
	DefaultSessionCacheSize  = 1024
	DefaultSessionTTL        = 30 * time.Minute
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultRateLimit         = 1000
	DefaultRateLimitWindow   = 5 * time.Minute
)
