package scheduler

import (
	"sort"

	"github.com/alexanderramin/quorum/internal/app"
)

// RankSuggestions orders suggestions by total score, highest first. The sort
// is stable, so equal totals keep their input order; callers pass slots in
// chronological order so the earlier slot wins a tie.
func RankSuggestions(suggestions []app.TimeSlotSuggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].TotalScore > suggestions[j].TotalScore
	})
}

// TopN truncates a ranked list to at most n entries. n <= 0 means no limit.
func TopN(suggestions []app.TimeSlotSuggestion, n int) []app.TimeSlotSuggestion {
	if n <= 0 || len(suggestions) <= n {
		return suggestions
	}
	return suggestions[:n]
}
