package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/generation"
	"github.com/alexanderramin/quorum/internal/repository"
	"github.com/alexanderramin/quorum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rosterYAML = `people:
  - id: emp_001
    name: Alice Kim
    team: Management
    role: president
  - id: emp_002
    name: Brian Lee
    team: Development
    role: tl
    busy:
      - title: Sprint planning
        start: 2025-03-19T10:00:00Z
        end: 2025-03-19T11:00:00Z
      - start: 2025-03-20T14:00:00Z
        end: 2025-03-20T15:00:00Z
`

const calendarICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//quorum//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:one\r\n" +
	"DTSTAMP:20250301T090000Z\r\n" +
	"SUMMARY:Board meeting\r\n" +
	"DTSTART:20250319T130000Z\r\n" +
	"DTEND:20250319T150000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:two\r\n" +
	"DTSTAMP:20250301T090000Z\r\n" +
	"DTSTART:20250319T160000Z\r\n" +
	"DTEND:20250319T170000Z\r\n" +
	"TRANSP:TRANSPARENT\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportRoster(t *testing.T) {
	database, people, busy := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	result, err := svc.ImportRoster(ctx, writeFile(t, "roster.yaml", rosterYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, result.PeopleCount)
	assert.Equal(t, 2, result.BusyCount)

	brian, err := people.GetByID(ctx, "emp_002")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTeamLead, brian.Role)
	assert.Equal(t, "emp_002@company.com", brian.Email)

	listed, err := busy.ListByOwner(ctx, "emp_002", testutil.RefDay, testutil.RefDay.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Sprint planning", listed[0].Title)
	assert.Equal(t, "Busy", listed[1].Title)
}

func TestImportRoster_ReimportUpdatesPeople(t *testing.T) {
	database, people, _ := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	_, err := svc.ImportRoster(ctx, writeFile(t, "roster.yaml", rosterYAML))
	require.NoError(t, err)

	updated := strings.Replace(rosterYAML, "role: tl", "role: group-lead", 1)
	_, err = svc.ImportRoster(ctx, writeFile(t, "roster.yml", updated))
	require.NoError(t, err)

	brian, err := people.GetByID(ctx, "emp_002")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleGroupLead, brian.Role)

	all, err := people.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportRoster_ValidationErrors(t *testing.T) {
	database, people, _ := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	_, err := svc.ImportRoster(context.Background(), writeFile(t, "roster.json",
		`{"people": [{"id": "a", "name": ""}, {"id": "a", "name": "B", "role": "intern"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (3 errors)")

	all, err := people.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportRoster_RollbackOnBusyCreateFailure(t *testing.T) {
	database, people, busy := setupRepos(t)

	// Exec #1 and #2 upsert the two people, #3 creates the first busy interval.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("injected busy create failure"),
	}
	svc := NewImportService(failUoW)

	_, err := svc.ImportRoster(context.Background(), writeFile(t, "roster.yaml", rosterYAML))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected busy create failure")

	all, err := people.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "people upserts are rolled back")

	listed, err := busy.ListByOwner(context.Background(), "emp_002", testutil.RefDay, testutil.RefDay.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestImportICS(t *testing.T) {
	database, people, busy := setupRepos(t)
	mustCreatePeople(t, people, testutil.NewTestPerson("Ann", testutil.WithPersonID("ann")))
	svc := NewImportService(testutil.NewTestUoW(database))
	ctx := context.Background()

	result, err := svc.ImportICS(ctx, "ann", writeFile(t, "ann.ics", calendarICS), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 1, result.BusyCount)
	assert.Equal(t, 1, result.Skipped)

	listed, err := busy.ListByOwner(ctx, "ann", testutil.RefDay, testutil.RefDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Board meeting", listed[0].Title)
	assert.Equal(t, 2*time.Hour, listed[0].Duration())
}

func TestImportICS_UnknownPerson(t *testing.T) {
	database, _, _ := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	_, err := svc.ImportICS(context.Background(), "ghost", writeFile(t, "ghost.ics", calendarICS), time.UTC)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSeed_RejectsNegativeCounts(t *testing.T) {
	database, people, _ := setupRepos(t)
	svc := NewImportService(testutil.NewTestUoW(database))

	opts := generation.DefaultSeedOptions(testutil.RefDay)
	opts.HorizonDays = -3
	_, err := svc.Seed(context.Background(), opts)
	require.ErrorIs(t, err, generation.ErrInvalidSeedOptions)

	all, err := people.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSeed_Idempotent(t *testing.T) {
	database, people, _ := setupRepos(t)
	obs := &recordingObserver{}
	svc := NewImportService(testutil.NewTestUoW(database), obs)
	ctx := context.Background()
	opts := generation.DefaultSeedOptions(testutil.RefDay)

	first, err := svc.Seed(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, 30, first.PeopleCount)
	assert.Positive(t, first.BusyCount)
	assert.Zero(t, first.Skipped)

	second, err := svc.Seed(ctx, opts)
	require.NoError(t, err)
	assert.Zero(t, second.BusyCount)
	assert.Equal(t, first.BusyCount, second.Skipped)

	all, err := people.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 30)

	events := obs.UseCases()
	require.Len(t, events, 2)
	assert.Equal(t, "seed", events[0].Name)
	assert.Equal(t, int64(1), events[0].Fields["seed"])
}
