package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/repository"
	"github.com/google/uuid"
)

type personService struct {
	*Directory
	people repository.PersonRepo
}

func NewPersonService(people repository.PersonRepo) PersonService {
	return &personService{Directory: NewDirectory(people), people: people}
}

func (s *personService) Add(ctx context.Context, p *domain.Person) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("person name is required")
	}
	role, ok := domain.ParseRole(string(p.Role))
	if !ok {
		return fmt.Errorf("unknown role %q", p.Role)
	}
	p.Role = role
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.people.Create(ctx, p)
}

func (s *personService) Get(ctx context.Context, id string) (*domain.Person, error) {
	return s.people.GetByID(ctx, id)
}

func (s *personService) List(ctx context.Context) ([]*domain.Person, error) {
	return s.ListPeople(ctx)
}

func (s *personService) Search(ctx context.Context, query string) ([]*domain.Person, error) {
	return s.SearchByName(ctx, query)
}

func (s *personService) Delete(ctx context.Context, id string) error {
	return s.people.Delete(ctx, id)
}
