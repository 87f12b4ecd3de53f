package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/EmojiKombat_Go/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// Storage
	StorageBackend string `validate:"oneof=memory file sqlite postgres"`
	DataDir        string `validate:"required_if=StorageBackend file"`
	SQLitePath     string `validate:"required_if=StorageBackend sqlite"`
	DeadLetterPath string

	// Database (postgres backend)
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int `validate:"gte=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	DBAutoMigrate     bool

	// Game
	CatalogPath      string
	TickInterval     time.Duration `validate:"gt=0"`
	SessionCacheSize int           `validate:"gte=1"`
	SessionTTL       time.Duration `validate:"gt=0"`
	MaxIdleAccrual   time.Duration `validate:"gte=0"`
	ShutdownTimeout  time.Duration `validate:"gt=0"`

	// HTTP edge
	APIKey          string // optional; when set every non-public request needs X-API-Key
	TrustedProxies  []string
	RateLimit       int           `validate:"gte=1"`
	RateLimitWindow time.Duration `validate:"gt=0"`
}

var validate = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", DefaultStorageBackend)),
		DataDir:        getEnv("DATA_DIR", DefaultDataDir),
		SQLitePath:     getEnv("SQLITE_PATH", DefaultSQLitePath),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "emojikombat"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		DBAutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", true),

		CatalogPath:      getEnv("CATALOG_PATH", ""),
		TickInterval:     getEnvAsDuration("TICK_INTERVAL", DefaultTickInterval),
		SessionCacheSize: getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		MaxIdleAccrual:   getEnvAsDuration("MAX_IDLE_ACCRUAL", 0),
		ShutdownTimeout:  getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),

		APIKey:          getEnv("API_KEY", ""),
		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		RateLimit:       getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		RateLimitWindow: getEnvAsDuration("RATE_LIMIT_WINDOW", DefaultRateLimitWindow),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and reports every failing field
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %s (got %v)", fe.Field(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// getEnvAsInt returns the integer value of key, or defaultValue when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration parses values like "30s" or "1h30m"; bare numbers are rejected
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// PoolConfig returns the pgx pool settings for the postgres backend
func (c *Config) PoolConfig() database.PoolConfig {
	return database.PoolConfig{
		ConnString:  c.GetDBConnString(),
		MaxConns:    c.DBMaxConns,
		MaxIdleTime: c.DBMaxConnIdleTime,
		MaxLifetime: c.DBMaxConnLifetime,
	}
}
