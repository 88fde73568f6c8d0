package repository

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexanderramin/quorum/internal/domain"
)

// CachedPersonRepo fronts a PersonRepo with an LRU of GetByID results.
// Writes through this repo evict the affected entry; list queries always go
// to the underlying store.
type CachedPersonRepo struct {
	PersonRepo
	cache *lru.Cache[string, domain.Person]
}

func NewCachedPersonRepo(inner PersonRepo, size int) (*CachedPersonRepo, error) {
	cache, err := lru.New[string, domain.Person](size)
	if err != nil {
		return nil, fmt.Errorf("create person cache: %w", err)
	}
	return &CachedPersonRepo{PersonRepo: inner, cache: cache}, nil
}

func (r *CachedPersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	if p, ok := r.cache.Get(id); ok {
		return &p, nil
	}
	p, err := r.PersonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Add(id, *p)
	return p, nil
}

func (r *CachedPersonRepo) Create(ctx context.Context, p *domain.Person) error {
	err := r.PersonRepo.Create(ctx, p)
	r.cache.Remove(p.ID)
	return err
}

func (r *CachedPersonRepo) Upsert(ctx context.Context, p *domain.Person) error {
	err := r.PersonRepo.Upsert(ctx, p)
	r.cache.Remove(p.ID)
	return err
}

func (r *CachedPersonRepo) Delete(ctx context.Context, id string) error {
	err := r.PersonRepo.Delete(ctx, id)
	r.cache.Remove(id)
	return err
}

// Purge drops every cached entry, for writes made outside this repo.
func (r *CachedPersonRepo) Purge() {
	r.cache.Purge()
}

func (r *CachedPersonRepo) Len() int {
	return r.cache.Len()
}
