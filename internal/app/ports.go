package app

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
)

var (
	ErrPersonNotFound = errors.New("person not found")
	// ErrDirectoryUnavailable marks a lookup that failed or timed out, as
	// opposed to a definite miss.
	ErrDirectoryUnavailable = errors.New("directory unavailable")
)

// Directory resolves people and the organizational facts scoring depends on.
type Directory interface {
	GetPerson(ctx context.Context, id string) (*domain.Person, error)
	RolePriority(role domain.Role) int
	RoleWeight(role domain.Role) float64
	IsExecutive(role domain.Role) bool
	IsLeader(role domain.Role) bool
}

// Calendar reports busy intervals overlapping [start, end) for each person.
// People without conflicts are absent from the result.
type Calendar interface {
	CheckConflicts(ctx context.Context, personIDs []string, start, end time.Time) (map[string][]domain.BusyInterval, error)
}

type SuggestUseCase interface {
	Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error)
}
