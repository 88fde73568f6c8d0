package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN_CarriesPragmas(t *testing.T) {
	got := dsn("/tmp/q.db")
	assert.Contains(t, got, "/tmp/q.db?")
	assert.Contains(t, got, "_pragma=foreign_keys%281%29")
	assert.Contains(t, got, "_pragma=busy_timeout%285000%29")
}

func TestOpenDB_FileEnforcesForeignKeysOnEveryConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quorum.db")
	database, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	database.SetMaxOpenConns(4)
	conns := make([]interface{ Close() error }, 0, 4)
	for i := 0; i < 4; i++ {
		conn, err := database.Conn(t.Context())
		require.NoError(t, err)
		conns = append(conns, conn)

		var fk int
		require.NoError(t, conn.QueryRowContext(t.Context(), `PRAGMA foreign_keys`).Scan(&fk))
		assert.Equal(t, 1, fk, "connection %d", i)
	}
	for _, c := range conns {
		c.Close()
	}

	var mode string
	require.NoError(t, database.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
