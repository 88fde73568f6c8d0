package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/generation"
	"github.com/alexanderramin/quorum/internal/repository"
	"github.com/alexanderramin/quorum/internal/service"
	"github.com/alexanderramin/quorum/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// cliNow is the day before testutil.RefDay, at the start of business.
var cliNow = testutil.At(testutil.RefDay.AddDate(0, 0, -1), 9, 0)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	people := repository.NewSQLitePersonRepo(database)
	busy := repository.NewSQLiteBusyRepo(database)

	return &App{
		People: service.NewPersonService(people),
		Busy:   service.NewBusyService(busy, people),
		Suggest: service.NewSuggestService(
			service.NewDirectory(people),
			service.NewCalendar(busy),
			service.WithClock(testutil.FixedClock(cliNow)),
			service.WithWorkers(2),
		),
		Import:   service.NewImportService(testutil.NewTestUoW(database)),
		Location: time.UTC,
		Now:      testutil.FixedClock(cliNow),
	}
}

// executeCmd runs a command through the root and returns its ANSI-free output.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stripANSI(buf.String()), err
}

func seedPeople(t *testing.T, a *App, people ...*domain.Person) {
	t.Helper()
	for _, p := range people {
		require.NoError(t, a.People.Add(context.Background(), p))
	}
}

// firstRow returns the first data row of the suggestion table.
func firstRow(t *testing.T, out string) string {
	t.Helper()
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		if strings.Contains(l, "WHEN") && i+2 < len(lines) {
			return lines[i+2]
		}
	}
	t.Fatalf("no suggestion table in output:\n%s", out)
	return ""
}

func TestPersonCommands(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "person", "add", "--id", "emp_001", "--name", "Ada", "--team", "Management", "--role", "President")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Ada (emp_001)")

	_, err = executeCmd(t, a, "person", "add", "--id", "emp_002", "--name", "Grace", "--team", "Development", "--role", "tl")
	require.NoError(t, err)

	out, err = executeCmd(t, a, "person", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "emp_001")
	assert.Contains(t, out, "president")
	assert.Contains(t, out, "team_lead")

	out, err = executeCmd(t, a, "person", "list", "--executives")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.NotContains(t, out, "Grace")

	out, err = executeCmd(t, a, "person", "list", "--team", "Development")
	require.NoError(t, err)
	assert.Contains(t, out, "Grace")
	assert.NotContains(t, out, "Ada")

	out, err = executeCmd(t, a, "person", "search", "gra")
	require.NoError(t, err)
	assert.Contains(t, out, "Grace")

	out, err = executeCmd(t, a, "person", "teams")
	require.NoError(t, err)
	assert.Contains(t, out, "Development")
	assert.Contains(t, out, "Management")

	out, err = executeCmd(t, a, "person", "show", "emp_002")
	require.NoError(t, err)
	assert.Contains(t, out, "GRACE")

	_, err = executeCmd(t, a, "person", "rm", "emp_002")
	require.NoError(t, err)
	_, err = executeCmd(t, a, "person", "show", "emp_002")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPersonAdd_RejectsUnknownRole(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "person", "add", "--name", "Ada", "--role", "emperor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestBusyCommands(t *testing.T) {
	a := testApp(t)
	seedPeople(t, a,
		testutil.NewTestPerson("Ada", testutil.WithPersonID("emp_001")),
		testutil.NewTestPerson("Grace", testutil.WithPersonID("emp_002")),
	)

	out, err := executeCmd(t, a, "busy", "add", "-p", "emp_001", "--start", "2025-03-19 10:00", "--duration", "90m", "--title", "Design review")
	require.NoError(t, err)
	assert.Contains(t, out, "Blocked Wed 2025-03-19 10:00-11:30 for emp_001")

	out, err = executeCmd(t, a, "busy", "list", "-p", "emp_001", "--from", "2025-03-17", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Design review")
	assert.Contains(t, out, "1h 30m")

	out, err = executeCmd(t, a, "busy", "conflicts", "-a", "emp_001,emp_002", "--start", "2025-03-19 11:00", "--end", "2025-03-19 12:00")
	require.NoError(t, err)
	assert.Contains(t, out, "emp_001")
	assert.Contains(t, out, "30m")

	out, err = executeCmd(t, a, "busy", "conflicts", "-a", "emp_002", "--start", "2025-03-19 11:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Everyone is free.")

	out, err = executeCmd(t, a, "busy", "free", "-a", "emp_001", "-a", "emp_002", "--date", "2025-03-19", "--duration", "60m")
	require.NoError(t, err)
	assert.Contains(t, out, "OPEN WINDOWS")
	assert.Contains(t, out, "09:00-10:00")
	assert.NotContains(t, out, "10:00-11:00")

	intervals, err := a.Busy.List(context.Background(), "emp_001", testutil.RefDay, testutil.RefDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, intervals, 1)

	_, err = executeCmd(t, a, "busy", "rm", intervals[0].ID)
	require.NoError(t, err)
	out, err = executeCmd(t, a, "busy", "list", "-p", "emp_001", "--from", "2025-03-17")
	require.NoError(t, err)
	assert.Contains(t, out, "No busy time in range.")
}

func TestBusyAdd_UnknownPerson(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "busy", "add", "-p", "ghost", "--start", "2025-03-19 10:00")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBusyAdd_BadTime(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "busy", "add", "-p", "emp_001", "--start", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a")
}

func TestSuggestCmd(t *testing.T) {
	a := testApp(t)
	seedPeople(t, a,
		testutil.NewTestPerson("Ada", testutil.WithPersonID("emp_001"), testutil.WithRole(domain.RolePresident)),
		testutil.NewTestPerson("Grace", testutil.WithPersonID("emp_002")),
	)
	ctx := context.Background()
	require.NoError(t, a.Busy.Add(ctx, testutil.NewTestBusy("emp_002", testutil.At(testutil.RefDay, 15, 0), time.Hour)))

	out, err := executeCmd(t, a, "suggest", "-a", "emp_001:organizer", "-a", "emp_002", "--date", "2025-03-19", "--duration", "60m", "--max", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "SUGGESTED TIMES")
	assert.Contains(t, out, "2 required")
	assert.Contains(t, firstRow(t, out), "Wed 2025-03-19 10:00-11:00")
	assert.Contains(t, firstRow(t, out), "2/2")
	assert.NotContains(t, out, "WHY THESE TIMES")

	out, err = executeCmd(t, a, "suggest", "-a", "emp_001,emp_002,ghost", "--date", "2025-03-19", "--duration", "1h", "--explain")
	require.NoError(t, err)
	assert.Contains(t, out, "WHY THESE TIMES")
	assert.Contains(t, out, "EXECUTIVE_PRESENCE")
	assert.Contains(t, out, "attendee ghost not found in directory")
}

func TestSuggestCmd_OptionalOnly(t *testing.T) {
	a := testApp(t)
	out, err := executeCmd(t, a, "suggest", "-a", "emp_009:optional", "--date", "2025-03-19", "--duration", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "0 required")
	assert.Contains(t, firstRow(t, out), "0/0")
}

func TestSuggestCmd_InputErrors(t *testing.T) {
	a := testApp(t)

	tests := []struct {
		name string
		args []string
		code app.SuggestErrorCode
	}{
		{"malformed date", []string{"--date", "19/03/2025"}, app.ErrInvalidTargetDate},
		{"zero duration", []string{"--date", "2025-03-19", "--duration", "0"}, app.ErrInvalidDuration},
		{"garbage duration", []string{"--date", "2025-03-19", "--duration", "soon"}, app.ErrInvalidDuration},
		{"unknown attendee role", []string{"--date", "2025-03-19", "-a", "emp_001:boss"}, app.ErrInvalidAttendee},
		{"empty attendee id", []string{"--date", "2025-03-19", "-a", ":organizer"}, app.ErrInvalidAttendee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, a, append([]string{"suggest"}, tt.args...)...)
			var se *app.SuggestError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.code, se.Code)
		})
	}
}

func TestSuggestCmd_RequiresDate(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "suggest", "-a", "emp_001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestSeedCmd_Idempotent(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "seed", "--start", "2025-03-17", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded: 30 people")
	assert.NotContains(t, out, "skipped")

	out, err = executeCmd(t, a, "seed", "--start", "2025-03-17", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "skipped")

	people, err := a.People.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, people, 30)
}

func TestSeedCmd_RejectsNegativeFlags(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "seed", "--start", "2025-03-17", "--days", "-1")
	require.ErrorIs(t, err, generation.ErrInvalidSeedOptions)

	_, err = executeCmd(t, a, "seed", "--start", "2025-03-17", "--busy-people", "-1")
	require.ErrorIs(t, err, generation.ErrInvalidSeedOptions)

	people, err := a.People.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestImportRosterCmd(t *testing.T) {
	a := testApp(t)
	path := filepath.Join(t.TempDir(), "team.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`people:
  - id: emp_100
    name: Ada
    role: vp
    busy:
      - title: Offsite
        start: "2025-03-19T09:00:00Z"
        end: "2025-03-19T12:00:00Z"
  - id: emp_101
    name: Grace
`), 0o644))

	out, err := executeCmd(t, a, "import", "roster", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 people, 1 busy intervals")

	out, err = executeCmd(t, a, "person", "show", "emp_100")
	require.NoError(t, err)
	assert.Contains(t, out, "vice_president")
}

func TestImportICSCmd(t *testing.T) {
	a := testApp(t)
	seedPeople(t, a, testutil.NewTestPerson("Ada", testutil.WithPersonID("emp_001")))

	path := filepath.Join(t.TempDir(), "ada.ics")
	ics := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//quorum//test//EN",
		"BEGIN:VEVENT",
		"UID:evt-1",
		"DTSTAMP:20250301T000000Z",
		"SUMMARY:Board meeting",
		"DTSTART:20250319T140000Z",
		"DTEND:20250319T153000Z",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")
	require.NoError(t, os.WriteFile(path, []byte(ics), 0o644))

	out, err := executeCmd(t, a, "import", "ics", "-p", "emp_001", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0 people, 1 busy intervals")

	out, err = executeCmd(t, a, "busy", "list", "-p", "emp_001", "--from", "2025-03-19", "--days", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Board meeting")
}
