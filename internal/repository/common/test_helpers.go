//go:build integration

package common

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/Taichi-iskw/webvideo/internal/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// SetupTestDB starts a PostgreSQL testcontainer, runs migrations and
// returns a pool plus the database URL it connects to
func SetupTestDB(t *testing.T) (*pgxpool.Pool, string) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	databaseURL, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, migrations.Up(databaseURL, MigrationsDir()))

	pool, err := pgxpool.New(ctx, databaseURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool, databaseURL
}

// ProjectRoot returns the repository root, located from this source file
func ProjectRoot() string {
	_, currentFile, _, _ := runtime.Caller(0)
	// internal/repository/common -> root
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "..")
}

// MigrationsDir returns the repository migrations directory
func MigrationsDir() string {
	return filepath.Join(ProjectRoot(), migrations.DefaultDir)
}
