package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/domain"
)

// callWithTimeout runs fn under a deadline. A call that ignores its context
// is abandoned once the deadline passes; its result is discarded.
func callWithTimeout[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		ch <- result{v: v, err: err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

type failOpenDirectory struct {
	inner    app.Directory
	timeout  time.Duration
	observer UseCaseObserver
}

// NewFailOpenDirectory bounds every person lookup by timeout. A lookup that
// fails for any reason other than a miss or caller cancellation is reported
// as app.ErrDirectoryUnavailable, so the attendee is scored as unknown rather
// than failing the run.
func NewFailOpenDirectory(inner app.Directory, timeout time.Duration, observers ...UseCaseObserver) app.Directory {
	return &failOpenDirectory{
		inner:    inner,
		timeout:  timeout,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (d *failOpenDirectory) GetPerson(ctx context.Context, id string) (*domain.Person, error) {
	p, err := callWithTimeout(ctx, d.timeout, func(ctx context.Context) (*domain.Person, error) {
		return d.inner.GetPerson(ctx, id)
	})
	if err == nil || errors.Is(err, app.ErrPersonNotFound) {
		return p, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	d.observer.ObserveDegraded(ctx, DegradedEvent{
		Collaborator: "directory",
		Operation:    "get_person",
		PersonIDs:    []string{id},
		Err:          err,
	})
	return nil, fmt.Errorf("%w: %s: %v", app.ErrDirectoryUnavailable, id, err)
}

func (d *failOpenDirectory) RolePriority(role domain.Role) int   { return d.inner.RolePriority(role) }
func (d *failOpenDirectory) RoleWeight(role domain.Role) float64 { return d.inner.RoleWeight(role) }
func (d *failOpenDirectory) IsExecutive(role domain.Role) bool   { return d.inner.IsExecutive(role) }
func (d *failOpenDirectory) IsLeader(role domain.Role) bool      { return d.inner.IsLeader(role) }

type failOpenCalendar struct {
	inner    app.Calendar
	timeout  time.Duration
	observer UseCaseObserver
}

// NewFailOpenCalendar bounds every conflict check by timeout. When the batch
// call fails it retries person by person; anyone whose lookup still fails is
// treated as free.
func NewFailOpenCalendar(inner app.Calendar, timeout time.Duration, observers ...UseCaseObserver) app.Calendar {
	return &failOpenCalendar{
		inner:    inner,
		timeout:  timeout,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (c *failOpenCalendar) CheckConflicts(ctx context.Context, personIDs []string, start, end time.Time) (map[string][]domain.BusyInterval, error) {
	check := func(ids []string) (map[string][]domain.BusyInterval, error) {
		return callWithTimeout(ctx, c.timeout, func(ctx context.Context) (map[string][]domain.BusyInterval, error) {
			return c.inner.CheckConflicts(ctx, ids, start, end)
		})
	}

	conflicts, err := check(personIDs)
	if err == nil {
		return conflicts, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	out := make(map[string][]domain.BusyInterval)
	var failed []string
	var lastErr error
	for _, id := range personIDs {
		one, err := check([]string{id})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failed = append(failed, id)
			lastErr = err
			continue
		}
		if busy := one[id]; len(busy) > 0 {
			out[id] = busy
		}
	}
	if len(failed) > 0 {
		c.observer.ObserveDegraded(ctx, DegradedEvent{
			Collaborator: "calendar",
			Operation:    "check_conflicts",
			PersonIDs:    failed,
			Err:          lastErr,
		})
	}
	return out, nil
}
