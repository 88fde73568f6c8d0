package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/scheduler"
	"golang.org/x/sync/errgroup"
)

// ValidateMeeting rejects malformed requests before any slot is generated.
func ValidateMeeting(m domain.MeetingRequest) error {
	if m.Duration <= 0 {
		return &app.SuggestError{
			Code:    app.ErrInvalidDuration,
			Message: "duration must be > 0",
		}
	}
	if m.TargetDate.IsZero() {
		return &app.SuggestError{
			Code:    app.ErrInvalidTargetDate,
			Message: "target date is required",
		}
	}
	for i, a := range m.Attendees {
		if a.PersonID == "" {
			return &app.SuggestError{
				Code:    app.ErrInvalidAttendee,
				Message: fmt.Sprintf("attendee %d has no person id", i),
			}
		}
		if !domain.ValidAttendeeRoles[a.Role] {
			return &app.SuggestError{
				Code:    app.ErrInvalidAttendee,
				Message: fmt.Sprintf("attendee %s has unknown role %q", a.PersonID, a.Role),
			}
		}
	}
	return nil
}

// RosterResolver looks up each required attendee once per request so the
// per-slot scoring never touches the directory.
type RosterResolver struct {
	directory app.Directory
}

// Resolve returns the scoring roster in request order. Unknown people stay in
// the roster with zero weight. Lookup failures other than cancellation are
// absorbed and reported as warnings.
func (r *RosterResolver) Resolve(ctx context.Context, ids []string) ([]scheduler.RequiredAttendee, []string, error) {
	roster := make([]scheduler.RequiredAttendee, 0, len(ids))
	var warnings []string
	for _, id := range ids {
		attendee := scheduler.RequiredAttendee{PersonID: id}
		p, err := r.directory.GetPerson(ctx, id)
		switch {
		case err == nil:
			attendee.Known = true
			attendee.Weight = r.directory.RoleWeight(p.Role)
			attendee.IsLeader = r.directory.IsLeader(p.Role)
		case errors.Is(err, app.ErrPersonNotFound):
			warnings = append(warnings, fmt.Sprintf("attendee %s not found in directory; scored as unknown", id))
		case errors.Is(err, app.ErrDirectoryUnavailable):
			warnings = append(warnings, fmt.Sprintf("directory unavailable for %s; scored as unknown", id))
		case ctx.Err() != nil:
			return nil, nil, ctx.Err()
		default:
			warnings = append(warnings, fmt.Sprintf("directory lookup for %s failed; scored as unknown", id))
		}
		roster = append(roster, attendee)
	}
	return roster, warnings, nil
}

// SlotScorer scores candidates concurrently against one resolved roster.
type SlotScorer struct {
	calendar app.Calendar
	weights  scheduler.ScoringWeights
	workers  int
}

// ScoreAll checks conflicts and scores every slot. Results keep the slots'
// order. A failed conflict check scores that slot as conflict-free and is
// counted in the returned degraded total.
func (s *SlotScorer) ScoreAll(
	ctx context.Context,
	slots []domain.CandidateSlot,
	target time.Time,
	roster []scheduler.RequiredAttendee,
) ([]app.TimeSlotSuggestion, int, error) {
	ids := make([]string, len(roster))
	for i, a := range roster {
		ids[i] = a.PersonID
	}

	out := make([]app.TimeSlotSuggestion, len(slots))
	var degraded atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.workers, 1))
	for i, slot := range slots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var conflicts map[string][]domain.BusyInterval
			if len(ids) > 0 {
				c, err := s.calendar.CheckConflicts(gctx, ids, slot.Start, slot.End)
				switch {
				case err == nil:
					conflicts = c
				case gctx.Err() != nil:
					return gctx.Err()
				default:
					degraded.Add(1)
				}
			}
			out[i] = scheduler.ScoreSlot(scheduler.ScoringInput{
				Slot:       slot,
				TargetDate: target,
				Required:   roster,
				Conflicts:  conflicts,
				Weights:    s.weights,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return out, int(degraded.Load()), nil
}

// AssembleResponse ranks scored slots and builds the response.
func AssembleResponse(
	now time.Time,
	meeting domain.MeetingRequest,
	scored []app.TimeSlotSuggestion,
	requiredCount int,
	maxSuggestions int,
	warnings []string,
) *app.SuggestResponse {
	candidates := len(scored)
	scheduler.RankSuggestions(scored)
	return &app.SuggestResponse{
		GeneratedAt:    now,
		TargetDate:     meeting.TargetDate,
		Duration:       meeting.Duration,
		CandidateCount: candidates,
		RequiredCount:  requiredCount,
		Suggestions:    scheduler.TopN(scored, maxSuggestions),
		Warnings:       warnings,
	}
}
