package service

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/scheduler"
)

type suggestService struct {
	resolver *RosterResolver
	scorer   *SlotScorer
	policy   scheduler.GenerationPolicy
	now      func() time.Time
	observer UseCaseObserver
}

type SuggestOption func(*suggestService)

// WithWorkers bounds how many slots are scored at once.
func WithWorkers(n int) SuggestOption {
	return func(s *suggestService) {
		if n > 0 {
			s.scorer.workers = n
		}
	}
}

func WithClock(now func() time.Time) SuggestOption {
	return func(s *suggestService) {
		if now != nil {
			s.now = now
		}
	}
}

func WithPolicy(p scheduler.GenerationPolicy) SuggestOption {
	return func(s *suggestService) { s.policy = p }
}

func WithWeights(w scheduler.ScoringWeights) SuggestOption {
	return func(s *suggestService) { s.scorer.weights = w }
}

func WithObserver(o UseCaseObserver) SuggestOption {
	return func(s *suggestService) {
		if o != nil {
			s.observer = o
		}
	}
}

func NewSuggestService(directory app.Directory, calendar app.Calendar, opts ...SuggestOption) SuggestService {
	s := &suggestService{
		resolver: &RosterResolver{directory: directory},
		scorer: &SlotScorer{
			calendar: calendar,
			weights:  scheduler.DefaultWeights(),
			workers:  runtime.NumCPU(),
		},
		policy:   scheduler.DefaultPolicy(),
		now:      time.Now,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *suggestService) Suggest(ctx context.Context, req app.SuggestRequest) (resp *app.SuggestResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"attendees":    len(req.Meeting.Attendees),
		"duration_min": int(req.Meeting.Duration.Minutes()),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "suggest",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = ValidateMeeting(req.Meeting); err != nil {
		return nil, err
	}

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}
	maxSuggestions := req.MaxSuggestions
	if maxSuggestions <= 0 || maxSuggestions > app.DefaultMaxSuggestions {
		maxSuggestions = app.DefaultMaxSuggestions
	}

	roster, warnings, err := s.resolver.Resolve(ctx, req.Meeting.RequiredAttendeeIDs())
	if err != nil {
		return nil, fmt.Errorf("resolving attendees: %w", err)
	}

	slots := scheduler.GenerateSlots(req.Meeting.TargetDate, req.Meeting.Duration, now, s.policy)
	fields["candidates"] = len(slots)

	scored, degraded, err := s.scorer.ScoreAll(ctx, slots, req.Meeting.TargetDate, roster)
	if err != nil {
		return nil, fmt.Errorf("scoring candidates: %w", err)
	}
	if degraded > 0 {
		warnings = append(warnings, fmt.Sprintf("calendar unavailable for %d of %d slots; treated as free", degraded, len(slots)))
		fields["degraded_slots"] = degraded
	}

	resp = AssembleResponse(now, req.Meeting, scored, len(roster), maxSuggestions, warnings)
	fields["suggestions"] = len(resp.Suggestions)
	return resp, nil
}
