package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
)

type PersonRepo interface {
	Create(ctx context.Context, p *domain.Person) error
	Upsert(ctx context.Context, p *domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	List(ctx context.Context) ([]*domain.Person, error)
	ListByTeam(ctx context.Context, team string) ([]*domain.Person, error)
	ListByRoles(ctx context.Context, roles []domain.Role) ([]*domain.Person, error)
	SearchByName(ctx context.Context, query string) ([]*domain.Person, error)
	ListTeams(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

type BusyRepo interface {
	Create(ctx context.Context, b *domain.BusyInterval) error
	GetByID(ctx context.Context, id string) (*domain.BusyInterval, error)
	Delete(ctx context.Context, id string) error
	// ListByOwner returns intervals lying entirely inside [from, to].
	ListByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]*domain.BusyInterval, error)
	// ListOverlapping returns intervals of the given owners intersecting
	// [start, end), ordered by owner then start.
	ListOverlapping(ctx context.Context, ownerIDs []string, start, end time.Time) ([]*domain.BusyInterval, error)
}
