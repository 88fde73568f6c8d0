package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/repository"
	"github.com/google/uuid"
)

type busyService struct {
	calendar *Calendar
	busy     repository.BusyRepo
	people   repository.PersonRepo
}

func NewBusyService(busy repository.BusyRepo, people repository.PersonRepo) BusyService {
	return &busyService{calendar: NewCalendar(busy), busy: busy, people: people}
}

func (s *busyService) Add(ctx context.Context, b *domain.BusyInterval) error {
	if !b.Start.Before(b.End) {
		return fmt.Errorf("busy interval must start before it ends")
	}
	if _, err := s.people.GetByID(ctx, b.OwnerID); err != nil {
		return fmt.Errorf("checking owner %s: %w", b.OwnerID, err)
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.Title = domain.OrDefault(b.Title, "Busy")
	b.CreatedAt = time.Now().UTC()
	b.AlignToSeconds()
	return s.busy.Create(ctx, b)
}

func (s *busyService) Get(ctx context.Context, id string) (*domain.BusyInterval, error) {
	return s.busy.GetByID(ctx, id)
}

func (s *busyService) List(ctx context.Context, personID string, from, to time.Time) ([]*domain.BusyInterval, error) {
	return s.calendar.ListBusy(ctx, personID, from, to)
}

func (s *busyService) Delete(ctx context.Context, id string) error {
	return s.busy.Delete(ctx, id)
}

func (s *busyService) Conflicts(ctx context.Context, personIDs []string, start, end time.Time) ([]ConflictDetail, error) {
	return s.calendar.ConflictDetails(ctx, personIDs, start, end)
}

func (s *busyService) Alternatives(ctx context.Context, req AlternativeRequest) ([]AlternativeTime, error) {
	return s.calendar.AlternativeTimes(ctx, req)
}
