package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quorum/internal/app"
)

// FormatSuggestions renders a ranked suggestion table with the run summary
// and any warnings below it.
func FormatSuggestions(resp *app.SuggestResponse) string {
	var b strings.Builder

	b.WriteString(Header("Suggested Times"))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Target %s · %s · %d required · %d candidates",
		resp.TargetDate.Format(DateLayout), FormatDuration(resp.Duration), resp.RequiredCount, resp.CandidateCount)))
	b.WriteString("\n\n")

	if len(resp.Suggestions) == 0 {
		b.WriteString(Dim("No slots fit the search window."))
		b.WriteString("\n")
	} else {
		headers := []string{"#", "WHEN", "SCORE", "ATTEND", "DAY", "NOTES"}
		rows := make([][]string, 0, len(resp.Suggestions))
		for i, s := range resp.Suggestions {
			rows = append(rows, []string{
				Dim(fmt.Sprintf("%d", i+1)),
				TimeRange(s.Start, s.End),
				ScoreColor(s.TotalScore).Render(fmt.Sprintf("%.1f", s.TotalScore)),
				fmt.Sprintf("%d/%d %s", s.AvailableCount, s.RequiredCount, AttendanceBar(s.AttendanceRate(), 5)),
				Dim(DayOffset(s.Start, resp.TargetDate)),
				slotNotes(s),
			})
		}
		b.WriteString(Table{Headers: headers, Rows: rows, RightAlign: map[int]bool{0: true, 2: true}}.Render())
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("!"), w))
		}
	}

	return b.String()
}

func slotNotes(s app.TimeSlotSuggestion) string {
	var notes []string
	if s.IsPreferredTime {
		notes = append(notes, StyleGreen.Render("preferred"))
	}
	if s.IsLunchOverlap {
		notes = append(notes, StyleYellow.Render("lunch"))
	}
	if n := s.ConflictCount(); n > 0 {
		notes = append(notes, StyleRed.Render(fmt.Sprintf("%d busy", n)))
	}
	return strings.Join(notes, " ")
}
