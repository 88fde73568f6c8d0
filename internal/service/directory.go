package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/repository"
)

// Directory answers person lookups from a person repository. Role facts come
// from the fixed domain tables, so they never touch storage.
type Directory struct {
	people repository.PersonRepo
}

var _ app.Directory = (*Directory)(nil)

func NewDirectory(people repository.PersonRepo) *Directory {
	return &Directory{people: people}
}

// GetPerson returns app.ErrPersonNotFound for unknown ids.
func (d *Directory) GetPerson(ctx context.Context, id string) (*domain.Person, error) {
	p, err := d.people.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", app.ErrPersonNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up person %s: %w", id, err)
	}
	return p, nil
}

func (d *Directory) RolePriority(role domain.Role) int   { return domain.RolePriority(role) }
func (d *Directory) RoleWeight(role domain.Role) float64 { return domain.RoleWeight(role) }
func (d *Directory) IsExecutive(role domain.Role) bool   { return domain.IsExecutiveRole(role) }
func (d *Directory) IsLeader(role domain.Role) bool      { return domain.IsLeaderRole(role) }

// ListPeople returns everyone, most senior first.
func (d *Directory) ListPeople(ctx context.Context) ([]*domain.Person, error) {
	people, err := d.people.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	sortBySeniority(people)
	return people, nil
}

func (d *Directory) SearchByName(ctx context.Context, query string) ([]*domain.Person, error) {
	people, err := d.people.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching people: %w", err)
	}
	return people, nil
}

func (d *Directory) ListTeam(ctx context.Context, team string) ([]*domain.Person, error) {
	people, err := d.people.ListByTeam(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("listing team %q: %w", team, err)
	}
	sortBySeniority(people)
	return people, nil
}

func (d *Directory) ListTeams(ctx context.Context) ([]string, error) {
	return d.people.ListTeams(ctx)
}

func (d *Directory) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Person, error) {
	return d.listByRoles(ctx, []domain.Role{role})
}

func (d *Directory) ListExecutives(ctx context.Context) ([]*domain.Person, error) {
	return d.listByRoles(ctx, domain.ExecutiveRoles())
}

func (d *Directory) ListLeaders(ctx context.Context) ([]*domain.Person, error) {
	return d.listByRoles(ctx, domain.LeaderRoles())
}

func (d *Directory) listByRoles(ctx context.Context, roles []domain.Role) ([]*domain.Person, error) {
	people, err := d.people.ListByRoles(ctx, roles)
	if err != nil {
		return nil, fmt.Errorf("listing people by role: %w", err)
	}
	sortBySeniority(people)
	return people, nil
}

// sortBySeniority orders by role priority; the repository's name order
// breaks ties.
func sortBySeniority(people []*domain.Person) {
	sort.SliceStable(people, func(i, j int) bool {
		return people[i].RolePriority() < people[j].RolePriority()
	})
}
