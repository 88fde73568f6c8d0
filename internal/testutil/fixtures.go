package testutil

import (
	"strings"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/google/uuid"
)

// Person options
type PersonOption func(*domain.Person)

func WithRole(r domain.Role) PersonOption {
	return func(p *domain.Person) {
		p.Role = r
	}
}

func WithTeam(team string) PersonOption {
	return func(p *domain.Person) {
		p.Team = team
	}
}

func WithEmail(email string) PersonOption {
	return func(p *domain.Person) {
		p.Email = email
	}
}

func WithPersonID(id string) PersonOption {
	return func(p *domain.Person) {
		p.ID = id
	}
}

func NewTestPerson(name string, opts ...PersonOption) *domain.Person {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Person{
		ID:        uuid.New().String(),
		Name:      name,
		Team:      "core",
		Email:     strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BusyInterval options
type BusyOption func(*domain.BusyInterval)

func WithTitle(title string) BusyOption {
	return func(b *domain.BusyInterval) {
		b.Title = title
	}
}

func NewTestBusy(ownerID string, start time.Time, d time.Duration, opts ...BusyOption) *domain.BusyInterval {
	b := &domain.BusyInterval{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Title:     "Busy",
		Start:     start,
		End:       start.Add(d),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RefDay is a fixed Wednesday used as the target date in scenario tests.
var RefDay = time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)

// At returns the given clock time on d.
func At(d time.Time, hour, minute int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
}

// FixedClock returns a now function that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
