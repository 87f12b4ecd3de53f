package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// requiredByBackend lists variables that have no safe default per backend
var requiredByBackend = map[string][]string{
	BackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
}

// exampleValues are the placeholders shipped in .env.example
var exampleValues = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
}

// envCheck inspects the environment, returning warnings for survivable
// problems and an error for anything that would fail at startup
type envCheck func() (warnings []string, err error)

var envChecks = []envCheck{
	checkSchemaVersion,
	checkBackendVars,
	checkTrustedProxies,
	checkExampleValues,
	checkAuth,
}

// ValidateEnvWithWarnings runs every check and joins the failures
func ValidateEnvWithWarnings() ([]string, error) {
	var (
		warnings []string
		errs     []error
	)
	for _, check := range envChecks {
		w, err := check()
		warnings = append(warnings, w...)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return warnings, nil
}

// ValidateEnv is ValidateEnvWithWarnings without the warnings
func ValidateEnv() error {
	_, err := ValidateEnvWithWarnings()
	return err
}

func checkSchemaVersion() ([]string, error) {
	v, ok := os.LookupEnv("ENV_SCHEMA_VERSION")
	if !ok || v == ExpectedEnvSchemaVersion {
		return nil, nil
	}
	return nil, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s (your .env file may be outdated)", ExpectedEnvSchemaVersion, v)
}

func checkBackendVars() ([]string, error) {
	backend := strings.ToLower(getEnv("STORAGE_BACKEND", DefaultStorageBackend))
	var missing []string
	for _, key := range requiredByBackend[backend] {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables for %s backend: %s", backend, strings.Join(missing, ", "))
	}
	if backend == BackendMemory {
		return []string{"STORAGE_BACKEND is memory - progress is lost on restart"}, nil
	}
	return nil, nil
}

func checkTrustedProxies() ([]string, error) {
	var bad []string
	for _, addr := range getEnvAsList("TRUSTED_PROXIES") {
		if net.ParseIP(addr) == nil {
			bad = append(bad, addr)
		}
	}
	if len(bad) > 0 {
		return nil, fmt.Errorf("TRUSTED_PROXIES must be IP addresses, got: %s", strings.Join(bad, ", "))
	}
	return nil, nil
}

func checkExampleValues() ([]string, error) {
	var warnings []string
	for _, key := range []string{"DB_PASSWORD", "API_KEY"} {
		if os.Getenv(key) == exampleValues[key] {
			warnings = append(warnings, key+" appears to be using the example value - replace it (e.g. openssl rand -hex 32)")
		}
	}
	return warnings, nil
}

func checkAuth() ([]string, error) {
	if os.Getenv("API_KEY") == "" {
		return []string{"API_KEY is not set - the HTTP API accepts unauthenticated requests"}, nil
	}
	return nil, nil
}
