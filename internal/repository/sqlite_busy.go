package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/quorum/internal/db"
	"github.com/alexanderramin/quorum/internal/domain"
)

// SQLiteBusyRepo implements BusyRepo using a SQLite database.
type SQLiteBusyRepo struct {
	db db.DBTX
}

// NewSQLiteBusyRepo creates a new SQLiteBusyRepo.
func NewSQLiteBusyRepo(conn db.DBTX) *SQLiteBusyRepo {
	return &SQLiteBusyRepo{db: conn}
}

const busyColumns = `id, owner_id, title, start_at, end_at, created_at`

func (r *SQLiteBusyRepo) Create(ctx context.Context, b *domain.BusyInterval) error {
	b.AlignToSeconds()
	query := `INSERT INTO busy_intervals (` + busyColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.OwnerID,
		b.Title,
		formatTime(b.Start),
		formatTime(b.End),
		formatTime(b.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting busy interval: %w", err)
	}
	return nil
}

func (r *SQLiteBusyRepo) GetByID(ctx context.Context, id string) (*domain.BusyInterval, error) {
	query := `SELECT ` + busyColumns + ` FROM busy_intervals WHERE id = ?`
	b, err := scanBusy(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("busy interval %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning busy interval: %w", err)
	}
	return b, nil
}

func (r *SQLiteBusyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM busy_intervals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting busy interval: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("busy interval %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteBusyRepo) ListByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]*domain.BusyInterval, error) {
	query := `SELECT ` + busyColumns + ` FROM busy_intervals
		WHERE owner_id = ? AND start_at >= ? AND end_at <= ?
		ORDER BY start_at, id`
	return r.queryBusy(ctx, "listing busy intervals", query, ownerID, formatTime(from), formatTime(to))
}

func (r *SQLiteBusyRepo) ListOverlapping(ctx context.Context, ownerIDs []string, start, end time.Time) ([]*domain.BusyInterval, error) {
	ownerIDs = dedupe(ownerIDs)
	if len(ownerIDs) == 0 || !start.Before(end) {
		return nil, nil
	}
	args := make([]any, 0, len(ownerIDs)+2)
	for _, id := range ownerIDs {
		args = append(args, id)
	}
	args = append(args, formatTime(end), formatTime(start))

	query := `SELECT ` + busyColumns + ` FROM busy_intervals
		WHERE owner_id IN (` + placeholders(len(ownerIDs)) + `)
		  AND start_at < ? AND end_at > ?
		ORDER BY owner_id, start_at, id`
	return r.queryBusy(ctx, "listing overlapping busy intervals", query, args...)
}

func (r *SQLiteBusyRepo) queryBusy(ctx context.Context, op, query string, args ...any) ([]*domain.BusyInterval, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []*domain.BusyInterval
	for rows.Next() {
		b, err := scanBusy(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning busy interval row: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating busy intervals: %w", err)
	}
	return out, nil
}

func scanBusy(row rowScanner) (*domain.BusyInterval, error) {
	var b domain.BusyInterval
	var startStr, endStr, createdAtStr string
	if err := row.Scan(&b.ID, &b.OwnerID, &b.Title, &startStr, &endStr, &createdAtStr); err != nil {
		return nil, err
	}

	var parseErr error
	b.Start, parseErr = parseTime(startStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_at: %w", parseErr)
	}
	b.End, parseErr = parseTime(endStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing end_at: %w", parseErr)
	}
	b.CreatedAt, parseErr = parseTime(createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &b, nil
}
