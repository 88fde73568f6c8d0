package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
)

// MemoryBusyRepo is an in-process BusyRepo indexed by owner.
type MemoryBusyRepo struct {
	mu      sync.RWMutex
	byID    map[string]*domain.BusyInterval
	byOwner map[string][]*domain.BusyInterval
}

func NewMemoryBusyRepo() *MemoryBusyRepo {
	return &MemoryBusyRepo{
		byID:    make(map[string]*domain.BusyInterval),
		byOwner: make(map[string][]*domain.BusyInterval),
	}
}

func copyBusy(b *domain.BusyInterval) *domain.BusyInterval {
	c := *b
	return &c
}

func (r *MemoryBusyRepo) Create(ctx context.Context, b *domain.BusyInterval) error {
	if !b.Start.Before(b.End) {
		return fmt.Errorf("inserting busy interval: start must precede end")
	}
	b.AlignToSeconds()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[b.ID]; exists {
		return fmt.Errorf("inserting busy interval: duplicate id %s", b.ID)
	}
	stored := copyBusy(b)
	r.byID[b.ID] = stored
	r.byOwner[b.OwnerID] = append(r.byOwner[b.OwnerID], stored)
	return nil
}

func (r *MemoryBusyRepo) GetByID(ctx context.Context, id string) (*domain.BusyInterval, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("busy interval %s: %w", id, ErrNotFound)
	}
	return copyBusy(b), nil
}

func (r *MemoryBusyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("busy interval %s: %w", id, ErrNotFound)
	}
	delete(r.byID, id)

	owned := r.byOwner[b.OwnerID]
	for i, o := range owned {
		if o.ID == id {
			r.byOwner[b.OwnerID] = append(owned[:i:i], owned[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryBusyRepo) ListByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]*domain.BusyInterval, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.BusyInterval
	for _, b := range r.byOwner[ownerID] {
		if !b.Start.Before(from) && !b.End.After(to) {
			out = append(out, copyBusy(b))
		}
	}
	sortBusy(out)
	return out, nil
}

func (r *MemoryBusyRepo) ListOverlapping(ctx context.Context, ownerIDs []string, start, end time.Time) ([]*domain.BusyInterval, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.BusyInterval
	for _, owner := range dedupe(ownerIDs) {
		for _, b := range r.byOwner[owner] {
			if b.Overlaps(start, end) {
				out = append(out, copyBusy(b))
			}
		}
	}
	sortBusy(out)
	return out, nil
}

func sortBusy(out []*domain.BusyInterval) {
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.OwnerID != b.OwnerID {
			return a.OwnerID < b.OwnerID
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.ID < b.ID
	})
}
