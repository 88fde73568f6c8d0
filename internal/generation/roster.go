package generation

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/google/uuid"
)

// roleQuota is how many people of each role a generated roster holds, most
// senior first.
var roleQuota = []struct {
	Role  domain.Role
	Count int
}{
	{domain.RolePresident, 1},
	{domain.RoleVicePresident, 1},
	{domain.RoleManagingDirector, 2},
	{domain.RoleMaster, 2},
	{domain.RoleProjectLead, 3},
	{domain.RoleGroupLead, 3},
	{domain.RoleTeamLead, 5},
	{domain.RolePartLead, 5},
	{domain.RoleContributor, 8},
}

var (
	teams = []string{"Development", "Planning", "Design", "Marketing", "Sales", "HR", "Finance"}

	givenNames = []string{
		"Minjun", "Seoyeon", "Jiho", "Haeun", "Dohyun", "Jiwoo", "Yejun", "Sua",
		"Alex", "Jordan", "Sam", "Taylor", "Morgan", "Riley", "Casey", "Jamie",
	}
	familyNames = []string{"Kim", "Lee", "Park", "Choi", "Jung", "Kang", "Cho", "Yoon", "Jang", "Lim"}

	meetingTitles = []string{
		"Weekly sync", "Project review", "1:1", "Client call", "Design review",
		"Sprint planning", "Budget review", "Hiring panel", "Roadmap session", "Workshop",
	}

	busyDurations = []time.Duration{30 * time.Minute, time.Hour, 90 * time.Minute, 2 * time.Hour}
)

// SeedOptions controls the shape of a generated dataset.
type SeedOptions struct {
	// Seed makes generation reproducible; the same seed yields the same data.
	Seed int64
	// Start is the first day busy intervals may fall on.
	Start time.Time
	// BusyPeople is how many people, taken from the front of the roster, get
	// busy intervals.
	BusyPeople int
	// HorizonDays bounds how far past Start busy intervals may fall.
	HorizonDays int
}

// ErrInvalidSeedOptions is returned by Validate for options no dataset can be
// generated from.
var ErrInvalidSeedOptions = errors.New("invalid seed options")

// Validate rejects negative counts.
func (o SeedOptions) Validate() error {
	if o.BusyPeople < 0 {
		return fmt.Errorf("%w: busy people must be >= 0, got %d", ErrInvalidSeedOptions, o.BusyPeople)
	}
	if o.HorizonDays < 0 {
		return fmt.Errorf("%w: days must be >= 0, got %d", ErrInvalidSeedOptions, o.HorizonDays)
	}
	return nil
}

// DefaultSeedOptions returns options for a 30-person demo organisation.
func DefaultSeedOptions(start time.Time) SeedOptions {
	return SeedOptions{Seed: 1, Start: start, BusyPeople: 10, HorizonDays: 21}
}

// Dataset is a generated roster together with its calendars.
type Dataset struct {
	People []*domain.Person
	Busy   []*domain.BusyInterval
}

// Generate builds a deterministic demo organisation. Out-of-range counts are
// clamped; call Validate first to reject them instead.
func Generate(opts SeedOptions) *Dataset {
	rng := rand.New(rand.NewSource(opts.Seed))
	now := opts.Start.UTC().Truncate(time.Second)

	ds := &Dataset{}
	n := 0
	for _, q := range roleQuota {
		for i := 0; i < q.Count; i++ {
			n++
			name := givenNames[rng.Intn(len(givenNames))] + " " + familyNames[rng.Intn(len(familyNames))]
			id := fmt.Sprintf("emp_%03d", n)
			ds.People = append(ds.People, &domain.Person{
				ID:        id,
				Name:      name,
				Team:      teamFor(q.Role, rng),
				Email:     id + "@company.com",
				Role:      q.Role,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
	}

	opts.HorizonDays = max(opts.HorizonDays, 0)
	limit := min(max(opts.BusyPeople, 0), len(ds.People))
	for _, p := range ds.People[:limit] {
		ds.Busy = append(ds.Busy, generateBusy(p.ID, opts, rng, now)...)
	}
	return ds
}

func teamFor(r domain.Role, rng *rand.Rand) string {
	switch r {
	case domain.RolePresident, domain.RoleVicePresident:
		return "Management"
	case domain.RoleManagingDirector:
		return []string{"Development", "Sales"}[rng.Intn(2)]
	case domain.RoleMaster:
		return []string{"Development", "Planning"}[rng.Intn(2)]
	default:
		return teams[rng.Intn(len(teams))]
	}
}

// generateBusy places 5 to 15 weekday meetings between 09:00 and 17:50.
// Weekend draws are discarded, so a person can end up with fewer.
func generateBusy(ownerID string, opts SeedOptions, rng *rand.Rand, now time.Time) []*domain.BusyInterval {
	start := opts.Start
	base := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	count := 5 + rng.Intn(11)
	out := make([]*domain.BusyInterval, 0, count)
	for i := 0; i < count; i++ {
		day := base.AddDate(0, 0, rng.Intn(opts.HorizonDays+1))
		hour := 9 + rng.Intn(9)
		minute := 10 * rng.Intn(6)
		d := busyDurations[rng.Intn(len(busyDurations))]
		title := meetingTitles[rng.Intn(len(meetingTitles))]
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			id = uuid.New()
		}
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		s := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
		out = append(out, &domain.BusyInterval{
			ID:        id.String(),
			OwnerID:   ownerID,
			Title:     title,
			Start:     s,
			End:       s.Add(d),
			CreatedAt: now,
		})
	}
	return out
}
