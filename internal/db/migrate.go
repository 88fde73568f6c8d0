package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateNormalizeRoles(db); err != nil {
		return fmt.Errorf("normalizing people roles: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS people (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		team       TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`ALTER TABLE people ADD COLUMN email TEXT NOT NULL DEFAULT ''`,
	`CREATE TABLE IF NOT EXISTS busy_intervals (
		id         TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		title      TEXT NOT NULL DEFAULT '',
		start_at   TEXT NOT NULL,
		end_at     TEXT NOT NULL,
		created_at TEXT NOT NULL,
		CHECK (start_at < end_at)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_people_team ON people(team)`,
	`CREATE INDEX IF NOT EXISTS idx_people_role ON people(role)`,
	`CREATE INDEX IF NOT EXISTS idx_busy_owner_start ON busy_intervals(owner_id, start_at)`,
	`CREATE INDEX IF NOT EXISTS idx_busy_window ON busy_intervals(start_at, end_at)`,
}

// migrateNormalizeRoles lower-cases and trims stored roles so rows written by
// older importers match the role tables.
func migrateNormalizeRoles(db *sql.DB) error {
	ctx := context.Background()

	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM people WHERE role != LOWER(TRIM(role))`).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking people roles: %w", err)
	}
	if count == 0 {
		return nil // nothing to normalize
	}

	if _, err := db.ExecContext(ctx,
		`UPDATE people SET role = LOWER(TRIM(role)) WHERE role != LOWER(TRIM(role))`); err != nil {
		return fmt.Errorf("updating people roles: %w", err)
	}
	return nil
}
