package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_FileBackendNeedsNoDatabase(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_BACKEND", BackendFile)

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_PostgresMissingRequired(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_BACKEND", "POSTGRES")
	t.Setenv("DB_USER", "user")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.NotContains(t, err.Error(), "DB_USER")
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_BACKEND", BackendPostgres)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
	t.Setenv("DB_USER", "user")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "db")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
}

func TestValidateEnvWithWarnings_MissingAPIKey(t *testing.T) {
	clearEnvVars(t)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unauthenticated")
}

func TestValidateEnv_TrustedProxiesMustBeIPs(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, proxy.local")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "proxy.local")
	assert.NotContains(t, err.Error(), "10.0.0.1")
}

func TestValidateEnv_JoinsFailures(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.1")
	t.Setenv("STORAGE_BACKEND", BackendPostgres)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestValidateEnvWithWarnings_MemoryBackend(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STORAGE_BACKEND", BackendMemory)
	t.Setenv("API_KEY", "k")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "lost on restart")
}
