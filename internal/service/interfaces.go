package service

import (
	"context"
	"time"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/generation"
)

type PersonService interface {
	Add(ctx context.Context, p *domain.Person) error
	Get(ctx context.Context, id string) (*domain.Person, error)
	List(ctx context.Context) ([]*domain.Person, error)
	Search(ctx context.Context, query string) ([]*domain.Person, error)
	ListTeam(ctx context.Context, team string) ([]*domain.Person, error)
	ListTeams(ctx context.Context) ([]string, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.Person, error)
	ListExecutives(ctx context.Context) ([]*domain.Person, error)
	ListLeaders(ctx context.Context) ([]*domain.Person, error)
	Delete(ctx context.Context, id string) error
}

type BusyService interface {
	Add(ctx context.Context, b *domain.BusyInterval) error
	Get(ctx context.Context, id string) (*domain.BusyInterval, error)
	List(ctx context.Context, personID string, from, to time.Time) ([]*domain.BusyInterval, error)
	Delete(ctx context.Context, id string) error
	Conflicts(ctx context.Context, personIDs []string, start, end time.Time) ([]ConflictDetail, error)
	Alternatives(ctx context.Context, req AlternativeRequest) ([]AlternativeTime, error)
}

type SuggestService interface {
	app.SuggestUseCase
}

// ImportResult holds the outcome of a roster, calendar or seed import.
type ImportResult struct {
	PeopleCount int
	BusyCount   int
	Skipped     int
}

type ImportService interface {
	ImportRoster(ctx context.Context, filePath string) (*ImportResult, error)
	ImportICS(ctx context.Context, personID, filePath string, loc *time.Location) (*ImportResult, error)
	Seed(ctx context.Context, opts generation.SeedOptions) (*ImportResult, error)
}
