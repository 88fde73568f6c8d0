package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttendee(t *testing.T) {
	att, err := parseAttendee(" emp_001 ")
	require.NoError(t, err)
	assert.Equal(t, domain.MeetingAttendee{PersonID: "emp_001", Role: domain.AttendeeRequired}, att)

	att, err = parseAttendee("emp_002:Organizer")
	require.NoError(t, err)
	assert.Equal(t, domain.AttendeeOrganizer, att.Role)

	att, err = parseAttendee("emp_003:optional")
	require.NoError(t, err)
	assert.Equal(t, domain.AttendeeOptional, att.Role)
}

func TestParseDate_UsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	d, err := parseDate("2025-03-19", tokyo)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 19, 0, 0, 0, 0, tokyo), d)
}

func TestParseDateTime(t *testing.T) {
	d, err := parseDateTime("2025-03-19 10:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 19, 10, 30, 0, 0, time.UTC), d)

	d, err = parseDateTime("2025-03-19T10:30:00+02:00", time.UTC)
	require.NoError(t, err)
	assert.True(t, d.Equal(time.Date(2025, 3, 19, 8, 30, 0, 0, time.UTC)))
}

func TestParseMeetingDuration(t *testing.T) {
	d, err := parseMeetingDuration("1h30m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	d, err = parseMeetingDuration("45")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, d)

	_, err = parseMeetingDuration("-10m")
	assert.Error(t, err)
}

func TestSplitIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitIDs([]string{"a, b", "", "c,"}))
	assert.Nil(t, splitIDs(nil))
}
