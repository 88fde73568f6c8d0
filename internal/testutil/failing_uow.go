package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/alexanderramin/quorum/internal/db"
)

// FailOnNthExecUoW runs the real SQLite unit of work but makes the FailOn-th
// write inside the transaction return Err, so callers can check that a
// partially applied batch is rolled back. Writes are counted from 1; reads
// are never failed.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &execCounter{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type execCounter struct {
	db.DBTX
	n      atomic.Int32
	failOn int32
	err    error
}

func (c *execCounter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.n.Add(1) == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
