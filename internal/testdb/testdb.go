// Package testdb provides helpers for tests that run against a real
// postgres instance. Tests using it skip themselves when no test
// database is configured, so the default `go test` run stays
// self-contained.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"

	"github.com/taskboard/taskboard-api/internal/platform/postgres"
)

// connectTimeout bounds the initial connection attempt.
const connectTimeout = 5 * time.Second

// URL returns the test database URL, checking TASKBOARD_TEST_DB_URL and
// then DATABASE_URL. An empty result means integration tests should be
// skipped.
func URL() string {
	if url := os.Getenv("TASKBOARD_TEST_DB_URL"); url != "" {
		return url
	}
	return os.Getenv("DATABASE_URL")
}

// MustOpen connects to the test database, applies migrations and
// registers cleanup that truncates all tables, giving each test a blank
// slate. It skips the calling test when no test database is configured.
func MustOpen(t *testing.T) *sql.DB {
	t.Helper()

	url := URL()
	if url == "" {
		t.Skip("set TASKBOARD_TEST_DB_URL to run postgres integration tests")
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx))

	require.NoError(t, postgres.Migrate(ctx, db))

	t.Cleanup(func() {
		Truncate(t, db)
		require.NoError(t, db.Close())
	})

	Truncate(t, db)
	return db
}

// Truncate empties every application table. Truncating users cascades to
// sessions, tasks and categories via their foreign keys.
func Truncate(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`TRUNCATE users CASCADE`)
	require.NoError(t, err)
}
