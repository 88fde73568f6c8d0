package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/quorum/internal/app"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so assertions are
// terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var fmtDay = time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)

func fmtAt(day, hour, min int) time.Time {
	return time.Date(2025, 3, day, hour, min, 0, 0, time.UTC)
}

func sampleResponse(t *testing.T) *app.SuggestResponse {
	t.Helper()
	return &app.SuggestResponse{
		GeneratedAt:    fmtAt(18, 9, 0),
		TargetDate:     fmtDay,
		Duration:       time.Hour,
		CandidateCount: 159,
		RequiredCount:  3,
		Suggestions: []app.TimeSlotSuggestion{
			{
				Start: fmtAt(19, 15, 0), End: fmtAt(19, 16, 0),
				TotalScore: 95, AvailableCount: 3, RequiredCount: 3,
				IsPreferredTime: true, DateProximityScore: 1,
				Reasons: []app.ScoreReason{
					{Component: app.ComponentAttendance, Message: "3 of 3 attendees available", Value: 1, WeightDelta: 40},
					{Component: app.ComponentTimePreference, Message: "preferred time", Value: 1, WeightDelta: 25},
				},
			},
			{
				Start: fmtAt(19, 12, 0), End: fmtAt(19, 13, 0),
				TotalScore: 48.3, AvailableCount: 2, RequiredCount: 3,
				IsLunchOverlap: true, DateProximityScore: 1,
				ConflictedPersonIDs: []string{"emp_002"},
				Reasons: []app.ScoreReason{
					{Component: app.ComponentLunchPenalty, Message: "overlaps lunch", Value: 1, WeightDelta: -5},
				},
			},
		},
		Warnings: []string{"attendee ghost not found in directory; scored as unknown"},
	}
}
