// Package pgtest starts a throwaway Postgres for integration tests.
//
// One container is shared by every test in a binary and removed by the
// testcontainers reaper when the binary exits.
package pgtest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image          = "postgres:15-alpine"
	startupTimeout = 30 * time.Second
)

var (
	once     sync.Once
	connStr  string
	startErr error
)

// ConnString returns a DSN for the shared container, skipping t in -short
// mode or when no container runtime is reachable.
func ConnString(t testing.TB) string {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	once.Do(func() { connStr, startErr = start(context.Background()) })
	if startErr != nil {
		t.Skipf("postgres container unavailable: %v", startErr)
	}
	return connStr
}

func start(ctx context.Context) (dsn string, err error) {
	// testcontainers panics when no docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("container runtime: %v", r)
		}
	}()

	c, err := postgres.Run(ctx, image,
		postgres.WithDatabase("emojikombat_test"),
		postgres.WithUsername("kombat"),
		postgres.WithPassword("kombat"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		return "", err
	}
	return c.ConnectionString(ctx, "sslmode=disable")
}
