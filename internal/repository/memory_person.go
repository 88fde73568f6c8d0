package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexanderramin/quorum/internal/domain"
)

// MemoryPersonRepo is an in-process PersonRepo. Values are copied in and out
// so callers never share state with the store.
type MemoryPersonRepo struct {
	mu     sync.RWMutex
	people map[string]*domain.Person
}

func NewMemoryPersonRepo() *MemoryPersonRepo {
	return &MemoryPersonRepo{people: make(map[string]*domain.Person)}
}

func copyPerson(p *domain.Person) *domain.Person {
	c := *p
	return &c
}

func (r *MemoryPersonRepo) Create(ctx context.Context, p *domain.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.people[p.ID]; exists {
		return fmt.Errorf("inserting person: duplicate id %s", p.ID)
	}
	r.people[p.ID] = copyPerson(p)
	return nil
}

func (r *MemoryPersonRepo) Upsert(ctx context.Context, p *domain.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyPerson(p)
	if existing, ok := r.people[p.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	r.people[p.ID] = stored
	return nil
}

func (r *MemoryPersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.people[id]
	if !ok {
		return nil, fmt.Errorf("person %s: %w", id, ErrNotFound)
	}
	return copyPerson(p), nil
}

func (r *MemoryPersonRepo) List(ctx context.Context) ([]*domain.Person, error) {
	return r.filter(func(*domain.Person) bool { return true }), nil
}

func (r *MemoryPersonRepo) ListByTeam(ctx context.Context, team string) ([]*domain.Person, error) {
	return r.filter(func(p *domain.Person) bool { return p.Team == team }), nil
}

func (r *MemoryPersonRepo) ListByRoles(ctx context.Context, roles []domain.Role) ([]*domain.Person, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	want := make(map[domain.Role]bool, len(roles))
	for _, role := range roles {
		want[role] = true
	}
	return r.filter(func(p *domain.Person) bool { return want[p.Role] }), nil
}

func (r *MemoryPersonRepo) SearchByName(ctx context.Context, q string) ([]*domain.Person, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil, nil
	}
	return r.filter(func(p *domain.Person) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	}), nil
}

func (r *MemoryPersonRepo) ListTeams(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var teams []string
	for _, p := range r.people {
		if p.Team == "" || seen[p.Team] {
			continue
		}
		seen[p.Team] = true
		teams = append(teams, p.Team)
	}
	sort.Strings(teams)
	return teams, nil
}

func (r *MemoryPersonRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.people[id]; !ok {
		return fmt.Errorf("person %s: %w", id, ErrNotFound)
	}
	delete(r.people, id)
	return nil
}

// filter returns matching people ordered by name then id, like the SQLite repo.
func (r *MemoryPersonRepo) filter(match func(*domain.Person) bool) []*domain.Person {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Person
	for _, p := range r.people {
		if match(p) {
			out = append(out, copyPerson(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
