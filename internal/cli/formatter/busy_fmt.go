package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/service"
)

// FormatBusyList renders one person's busy intervals.
func FormatBusyList(intervals []*domain.BusyInterval) string {
	if len(intervals) == 0 {
		return Dim("No busy time in range.") + "\n"
	}

	headers := []string{"ID", "WHEN", "LENGTH", "TITLE"}
	rows := make([][]string, 0, len(intervals))
	for _, b := range intervals {
		rows = append(rows, []string{
			TruncID(b.ID),
			TimeRange(b.Start, b.End),
			FormatDuration(b.Duration()),
			b.Title,
		})
	}
	return RenderTable(headers, rows)
}

// FormatConflicts renders the conflicts found for a proposed window.
func FormatConflicts(conflicts []service.ConflictDetail) string {
	if len(conflicts) == 0 {
		return StyleGreen.Render("✔") + " Everyone is free.\n"
	}

	headers := []string{"PERSON", "BUSY", "OVERLAP", "TITLE"}
	rows := make([][]string, 0, len(conflicts))
	for _, c := range conflicts {
		rows = append(rows, []string{
			StyleBold.Render(c.PersonID),
			TimeRange(c.Busy.Start, c.Busy.End),
			StyleRed.Render(FormatDuration(c.OverlapDuration())),
			c.Busy.Title,
		})
	}
	return RenderTable(headers, rows)
}

// FormatAlternatives renders the least-conflicted windows of a day.
func FormatAlternatives(alts []service.AlternativeTime) string {
	if len(alts) == 0 {
		return Dim("No windows fit the requested hours.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Open Windows"))
	b.WriteString("\n")
	for _, a := range alts {
		marker := StyleGreen.Render("✔")
		detail := ""
		if a.ConflictCount > 0 {
			marker = StyleYellow.Render("!")
			detail = Dim(fmt.Sprintf("  %d conflict(s): %s", a.ConflictCount, strings.Join(a.ConflictedPersonIDs, ", ")))
		}
		b.WriteString(fmt.Sprintf("  %s %s%s\n", marker, TimeRange(a.Start, a.End), detail))
	}
	return b.String()
}

// FormatImportResult summarizes an import or seed run.
func FormatImportResult(what string, r *service.ImportResult) string {
	line := fmt.Sprintf("%s %s: %d people, %d busy intervals", StyleGreen.Render("✔"), what, r.PeopleCount, r.BusyCount)
	if r.Skipped > 0 {
		line += Dim(fmt.Sprintf(" (%d skipped)", r.Skipped))
	}
	return line + "\n"
}
