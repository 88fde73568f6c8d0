package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// UseCaseEvent describes one finished service call.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// DegradedEvent records a directory or calendar lookup that failed or timed
// out and was answered with a fail-open default instead.
type DegradedEvent struct {
	Collaborator string
	Operation    string
	PersonIDs    []string
	Err          error
}

// UseCaseObserver receives an event per finished use case and per fail-open
// fallback.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
	ObserveDegraded(ctx context.Context, event DegradedEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent)   {}
func (NoopUseCaseObserver) ObserveDegraded(context.Context, DegradedEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one logfmt record per event to w.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

// ObserveUseCase logs at error level when the use case failed. Fields are
// written in key order so records diff cleanly.
func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	}
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	if event.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "service_use_case", attrs...)
}

func (o *logUseCaseObserver) ObserveDegraded(ctx context.Context, event DegradedEvent) {
	attrs := []slog.Attr{
		slog.String("collaborator", event.Collaborator),
		slog.String("operation", event.Operation),
		slog.String("person_ids", strings.Join(event.PersonIDs, ",")),
	}
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	o.logger.LogAttrs(ctx, slog.LevelWarn, "collaborator_degraded", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
