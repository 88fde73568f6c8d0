package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/quorum/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB returns a migrated in-memory database closed at test cleanup.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	return openCleanup(t, ":memory:")
}

// NewTestFileDB returns a migrated database file in a temp directory. Unlike
// ":memory:" its pool can hold several connections sharing one store, which
// concurrency tests need.
func NewTestFileDB(t testing.TB) *sql.DB {
	t.Helper()
	return openCleanup(t, filepath.Join(t.TempDir(), "quorum_test.db"))
}

func openCleanup(t testing.TB, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	require.NoError(t, err, "opening test database %s", path)
	t.Cleanup(func() { database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
