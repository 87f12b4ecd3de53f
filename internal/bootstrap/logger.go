package bootstrap

import (
	"log/slog"
	"os"

	"github.com/osse101/EmojiKombat_Go/internal/config"
	"github.com/osse101/EmojiKombat_Go/internal/logger"
)

// SetupLogger installs the process-wide logger from cfg and logs the startup
// banner. Source locations are only added outside production.
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   cfg.Environment == config.DefaultEnvironment,
	}, os.Stdout)

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage_backend", cfg.StorageBackend)

	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"data_dir", cfg.DataDir,
		"sqlite_path", cfg.SQLitePath,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"tick_interval", cfg.TickInterval,
		"session_cache_size", cfg.SessionCacheSize,
		"auth_enabled", cfg.APIKey != "")

	return l
}
