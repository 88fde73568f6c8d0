package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func icsCalendar(events ...string) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//quorum//test//EN\r\n")
	for _, e := range events {
		b.WriteString(e)
	}
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func icsEvent(uid string, lines ...string) string {
	var b strings.Builder
	b.WriteString("BEGIN:VEVENT\r\nUID:" + uid + "\r\nDTSTAMP:20250301T090000Z\r\n")
	for _, l := range lines {
		b.WriteString(l + "\r\n")
	}
	b.WriteString("END:VEVENT\r\n")
	return b.String()
}

func TestParseICS_ImportsOpaqueEvents(t *testing.T) {
	data := icsCalendar(
		icsEvent("a", "SUMMARY:Design review", "DTSTART:20250319T100000Z", "DTEND:20250319T110000Z"),
		icsEvent("b", "DTSTART:20250319T140000Z", "DURATION:PT90M"),
	)

	result, err := ParseICS(strings.NewReader(data), "emp_001", time.UTC)
	require.NoError(t, err)
	require.Len(t, result.Busy, 2)
	assert.Zero(t, result.Skipped)

	first := result.Busy[0]
	assert.Equal(t, "emp_001", first.OwnerID)
	assert.Equal(t, "Design review", first.Title)
	assert.True(t, first.Start.Equal(time.Date(2025, 3, 19, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Hour, first.Duration())

	second := result.Busy[1]
	assert.Equal(t, "Busy", second.Title, "missing summary gets a default")
	assert.Equal(t, 90*time.Minute, second.Duration())
}

func TestParseICS_SkipsFreeAndCancelled(t *testing.T) {
	data := icsCalendar(
		icsEvent("free", "DTSTART:20250319T100000Z", "DTEND:20250319T110000Z", "TRANSP:TRANSPARENT"),
		icsEvent("gone", "DTSTART:20250319T120000Z", "DTEND:20250319T130000Z", "STATUS:CANCELLED"),
		icsEvent("empty", "DTSTART:20250319T150000Z", "DTEND:20250319T150000Z"),
		icsEvent("kept", "DTSTART:20250319T160000Z", "DTEND:20250319T170000Z", "TRANSP:OPAQUE"),
	)

	result, err := ParseICS(strings.NewReader(data), "emp_001", time.UTC)
	require.NoError(t, err)
	require.Len(t, result.Busy, 1)
	assert.Equal(t, 16, result.Busy[0].Start.Hour())
	assert.Equal(t, 3, result.Skipped)
}

func TestParseICS_FloatingTimesUseLocation(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	data := icsCalendar(icsEvent("f", "DTSTART:20250319T100000", "DTEND:20250319T110000"))

	result, err := ParseICS(strings.NewReader(data), "emp_001", seoul)
	require.NoError(t, err)
	require.Len(t, result.Busy, 1)
	assert.True(t, result.Busy[0].Start.Equal(time.Date(2025, 3, 19, 1, 0, 0, 0, time.UTC)))
}

func TestParseICS_Malformed(t *testing.T) {
	_, err := ParseICS(strings.NewReader("BEGIN:VCALENDAR\r\nBEGIN:VEVENT\r\n"), "emp_001", time.UTC)
	assert.Error(t, err)
}
