package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/scheduler"
)

// FormatExplanation renders the explanation points for one suggestion,
// followed by the per-component score breakdown.
func FormatExplanation(rank int, s app.TimeSlotSuggestion) string {
	e := scheduler.Explain(s)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("#%d", rank)), StyleBold.Render(e.Headline)))
	for _, p := range e.Points {
		b.WriteString(fmt.Sprintf("  %s %s\n", LevelIndicator(p.Level), p.Text))
	}

	if len(s.Reasons) > 0 {
		for _, r := range s.Reasons {
			delta := fmt.Sprintf("%+.1f", r.WeightDelta)
			style := StyleGreen
			if r.WeightDelta < 0 {
				style = StyleRed
			} else if r.WeightDelta == 0 {
				style = StyleDim
			}
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				style.Render(fmt.Sprintf("%6s", delta)), Dim(fmt.Sprintf("%-18s", r.Component)), r.Message))
		}
	}
	if len(s.ConflictedPersonIDs) > 0 {
		b.WriteString(fmt.Sprintf("    %s %s\n", Dim("busy:"), strings.Join(s.ConflictedPersonIDs, ", ")))
	}
	return b.String()
}

// FormatExplanations renders every suggestion's explanation in rank order.
func FormatExplanations(resp *app.SuggestResponse) string {
	if len(resp.Suggestions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(Header("Why These Times"))
	b.WriteString("\n")
	for i, s := range resp.Suggestions {
		b.WriteString(FormatExplanation(i+1, s))
	}
	return b.String()
}
