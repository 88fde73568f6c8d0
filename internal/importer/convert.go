package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/google/uuid"
)

// Roster is a converted roster ready for persistence.
type Roster struct {
	People []*domain.Person
	Busy   []*domain.BusyInterval
}

// ConvertRoster transforms a validated RosterSchema into domain objects.
// Call ValidateRosterSchema first; ConvertRoster assumes the schema is valid.
func ConvertRoster(schema *RosterSchema, now time.Time) (*Roster, error) {
	now = now.UTC().Truncate(time.Second)
	roster := &Roster{People: make([]*domain.Person, 0, len(schema.People))}

	for _, p := range schema.People {
		role, ok := domain.ParseRole(p.Role)
		if !ok {
			return nil, fmt.Errorf("person %q: unknown role %q", p.ID, p.Role)
		}
		roster.People = append(roster.People, &domain.Person{
			ID:        p.ID,
			Name:      strings.TrimSpace(p.Name),
			Team:      strings.TrimSpace(p.Team),
			Email:     domain.OrDefault(p.Email, defaultEmail(p.ID)),
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		})

		for _, b := range p.Busy {
			start, err := time.Parse(time.RFC3339, b.Start)
			if err != nil {
				return nil, fmt.Errorf("parsing busy start for %q: %w", p.ID, err)
			}
			end, err := time.Parse(time.RFC3339, b.End)
			if err != nil {
				return nil, fmt.Errorf("parsing busy end for %q: %w", p.ID, err)
			}
			roster.Busy = append(roster.Busy, &domain.BusyInterval{
				ID:        uuid.New().String(),
				OwnerID:   p.ID,
				Title:     domain.OrDefault(b.Title, "Busy"),
				Start:     start,
				End:       end,
				CreatedAt: now,
			})
		}
	}

	return roster, nil
}

func defaultEmail(id string) string {
	return strings.ToLower(id) + "@company.com"
}
