package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/repository"
)

const (
	alternativeStep  = 30 * time.Minute
	maxAlternatives  = 5
	defaultStartHour = 9
	defaultEndHour   = 18
)

// Calendar answers busy-time questions from a busy-interval repository.
type Calendar struct {
	busy repository.BusyRepo
}

var _ app.Calendar = (*Calendar)(nil)

func NewCalendar(busy repository.BusyRepo) *Calendar {
	return &Calendar{busy: busy}
}

// CheckConflicts groups the intervals overlapping [start, end) by owner.
// Unknown ids simply have no entry.
func (c *Calendar) CheckConflicts(ctx context.Context, personIDs []string, start, end time.Time) (map[string][]domain.BusyInterval, error) {
	out := make(map[string][]domain.BusyInterval)
	if len(personIDs) == 0 {
		return out, nil
	}
	rows, err := c.busy.ListOverlapping(ctx, personIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("checking conflicts: %w", err)
	}
	for _, b := range rows {
		out[b.OwnerID] = append(out[b.OwnerID], *b)
	}
	return out, nil
}

// ListBusy returns a person's intervals lying entirely inside [from, to].
func (c *Calendar) ListBusy(ctx context.Context, personID string, from, to time.Time) ([]*domain.BusyInterval, error) {
	rows, err := c.busy.ListByOwner(ctx, personID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing busy intervals for %s: %w", personID, err)
	}
	return rows, nil
}

// ConflictDetail describes one busy interval clashing with a proposed window.
type ConflictDetail struct {
	PersonID     string
	Busy         domain.BusyInterval
	OverlapStart time.Time
	OverlapEnd   time.Time
}

func (d ConflictDetail) OverlapDuration() time.Duration {
	return d.OverlapEnd.Sub(d.OverlapStart)
}

// ConflictDetails lists every clash with [start, end), ordered by person then
// busy start.
func (c *Calendar) ConflictDetails(ctx context.Context, personIDs []string, start, end time.Time) ([]ConflictDetail, error) {
	if len(personIDs) == 0 {
		return nil, nil
	}
	rows, err := c.busy.ListOverlapping(ctx, personIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("checking conflicts: %w", err)
	}
	details := make([]ConflictDetail, 0, len(rows))
	for _, b := range rows {
		details = append(details, ConflictDetail{
			PersonID:     b.OwnerID,
			Busy:         *b,
			OverlapStart: later(start, b.Start),
			OverlapEnd:   earlier(end, b.End),
		})
	}
	return details, nil
}

// AlternativeRequest asks for the least-conflicted windows on one day.
// Zero hours default to 09:00-18:00.
type AlternativeRequest struct {
	PersonIDs []string
	Day       time.Time
	Duration  time.Duration
	StartHour int
	EndHour   int
}

// AlternativeTime is one window and the number of busy intervals it hits.
type AlternativeTime struct {
	Start               time.Time
	End                 time.Time
	ConflictCount       int
	ConflictedPersonIDs []string
}

// AlternativeTimes scans the day in 30-minute steps and returns up to five
// windows with the fewest conflicting intervals. Ties keep chronological order.
func (c *Calendar) AlternativeTimes(ctx context.Context, req AlternativeRequest) ([]AlternativeTime, error) {
	if req.Duration <= 0 {
		return nil, &app.SuggestError{Code: app.ErrInvalidDuration, Message: "duration must be > 0"}
	}
	startHour, endHour := req.StartHour, req.EndHour
	if startHour == 0 && endHour == 0 {
		startHour, endHour = defaultStartHour, defaultEndHour
	}

	day := req.Day
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location())
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), endHour, 0, 0, 0, day.Location())

	var out []AlternativeTime
	for s := dayStart; s.Before(dayEnd); s = s.Add(alternativeStep) {
		e := s.Add(req.Duration)
		if e.After(dayEnd) {
			break
		}
		conflicts, err := c.CheckConflicts(ctx, req.PersonIDs, s, e)
		if err != nil {
			return nil, err
		}
		alt := AlternativeTime{Start: s, End: e}
		for id, busy := range conflicts {
			alt.ConflictCount += len(busy)
			alt.ConflictedPersonIDs = append(alt.ConflictedPersonIDs, id)
		}
		sort.Strings(alt.ConflictedPersonIDs)
		out = append(out, alt)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ConflictCount < out[j].ConflictCount
	})
	if len(out) > maxAlternatives {
		out = out[:maxAlternatives]
	}
	return out, nil
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
