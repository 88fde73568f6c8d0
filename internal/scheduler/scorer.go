package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/domain"
)

type ScoringWeights struct {
	Attendance        float64
	TimePreference    float64
	DateProximity     float64
	ExecutivePresence float64
	LunchPenalty      float64
}

func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Attendance:        40,
		TimePreference:    25,
		DateProximity:     20,
		ExecutivePresence: 10,
		LunchPenalty:      5,
	}
}

const (
	lunchStartHour, lunchStartMin = 12, 0
	lunchEndHour, lunchEndMin     = 13, 30
)

// RequiredAttendee is a required or organizer attendee resolved against the
// directory once per request. Unknown people keep Known false and weight 0.
type RequiredAttendee struct {
	PersonID string
	Known    bool
	Weight   float64
	IsLeader bool
}

type ScoringInput struct {
	Slot       domain.CandidateSlot
	TargetDate time.Time
	Required   []RequiredAttendee
	// Conflicts holds busy intervals keyed by person; only keys matching a
	// required attendee count as conflicted.
	Conflicts map[string][]domain.BusyInterval
	Weights   ScoringWeights
}

// ScoreSlot evaluates one candidate against a resolved roster. It is pure:
// identical inputs always produce identical suggestions.
func ScoreSlot(input ScoringInput) app.TimeSlotSuggestion {
	conflicted := conflictedIDs(input)
	result := app.TimeSlotSuggestion{
		Start:               input.Slot.Start,
		End:                 input.Slot.End,
		RequiredCount:       len(input.Required),
		AvailableCount:      len(input.Required) - len(conflicted),
		ConflictedPersonIDs: conflicted,
	}

	unavailable := make(map[string]bool, len(conflicted))
	for _, id := range conflicted {
		unavailable[id] = true
	}

	var score float64
	factors := []func(ScoringInput, map[string]bool) app.ScoreReason{
		scoreAttendance,
		scoreTimePreference,
		scoreDateProximity,
		scoreExecutivePresence,
		scoreLunchPenalty,
	}
	for _, f := range factors {
		reason := f(input, unavailable)
		score += reason.WeightDelta
		result.Reasons = append(result.Reasons, reason)

		switch reason.Component {
		case app.ComponentTimePreference:
			result.IsPreferredTime = reason.Value == 1.0
		case app.ComponentDateProximity:
			result.DateProximityScore = reason.Value
		case app.ComponentLunchPenalty:
			result.IsLunchOverlap = reason.Value > 0
		}
	}

	result.TotalScore = score
	return result
}

func conflictedIDs(input ScoringInput) []string {
	ids := make([]string, 0)
	for _, a := range input.Required {
		if len(input.Conflicts[a.PersonID]) > 0 {
			ids = append(ids, a.PersonID)
		}
	}
	sort.Strings(ids)
	return ids
}

func scoreAttendance(input ScoringInput, unavailable map[string]bool) app.ScoreReason {
	total := len(input.Required)
	rate := 1.0
	msg := "No required attendees"
	if total > 0 {
		available := total - len(unavailable)
		rate = float64(available) / float64(total)
		msg = fmt.Sprintf("%d of %d required attendees available", available, total)
	}
	return app.ScoreReason{
		Component:   app.ComponentAttendance,
		Message:     msg,
		Value:       rate,
		WeightDelta: rate * input.Weights.Attendance,
	}
}

func scoreTimePreference(input ScoringInput, _ map[string]bool) app.ScoreReason {
	hour := input.Slot.Start.Hour()
	value, msg := timePreference(hour, hasLeader(input.Required))
	return app.ScoreReason{
		Component:   app.ComponentTimePreference,
		Message:     msg,
		Value:       value,
		WeightDelta: value * input.Weights.TimePreference,
	}
}

// timePreference rates a start hour. Hours 8 through 18 are handled before
// the leader rule, so only 19 can take the leader allowance.
func timePreference(hour int, leaderPresent bool) (float64, string) {
	switch {
	case hour == 10 || hour == 15:
		return 1.0, "Preferred time of day"
	case hour == 9 || hour == 11 || hour == 14 || hour == 16:
		return 0.8, "Good time of day"
	case hour >= 8 && hour <= 18:
		return 0.6, "Regular business hours"
	case leaderPresent && (hour == 8 || hour == 19):
		return 0.4, "Edge hour accepted with a leader attending"
	default:
		return 0.2, "Outside preferred hours"
	}
}

func hasLeader(required []RequiredAttendee) bool {
	for _, a := range required {
		if a.Known && a.IsLeader {
			return true
		}
	}
	return false
}

func scoreDateProximity(input ScoringInput, _ map[string]bool) app.ScoreReason {
	days := daysBetween(input.Slot.Start, input.TargetDate)
	value := dateProximity(days)
	var msg string
	switch days {
	case 0:
		msg = "On the target date"
	case 1:
		msg = "1 day from the target date"
	default:
		msg = fmt.Sprintf("%d days from the target date", days)
	}
	return app.ScoreReason{
		Component:   app.ComponentDateProximity,
		Message:     msg,
		Value:       value,
		WeightDelta: value * input.Weights.DateProximity,
	}
}

func dateProximity(days int) float64 {
	switch {
	case days == 0:
		return 1.0
	case days <= 2:
		return 0.8
	case days <= 5:
		return 0.6
	case days <= 7:
		return 0.4
	default:
		return 0.2
	}
}

func scoreExecutivePresence(input ScoringInput, unavailable map[string]bool) app.ScoreReason {
	var total, available float64
	for _, a := range input.Required {
		if !a.Known {
			continue
		}
		total += a.Weight
		if !unavailable[a.PersonID] {
			available += a.Weight
		}
	}
	value := 1.0
	msg := "No weighted attendees"
	if total > 0 {
		value = available / total
		msg = fmt.Sprintf("%.0f%% of seniority weight available", value*100)
	}
	return app.ScoreReason{
		Component:   app.ComponentExecutivePresence,
		Message:     msg,
		Value:       value,
		WeightDelta: value * input.Weights.ExecutivePresence,
	}
}

func scoreLunchPenalty(input ScoringInput, _ map[string]bool) app.ScoreReason {
	if !OverlapsLunch(input.Slot) {
		return app.ScoreReason{
			Component: app.ComponentLunchPenalty,
			Message:   "Clear of lunch",
		}
	}
	return app.ScoreReason{
		Component:   app.ComponentLunchPenalty,
		Message:     "Overlaps lunch (12:00-13:30)",
		Value:       1,
		WeightDelta: -input.Weights.LunchPenalty,
	}
}

// OverlapsLunch reports whether the slot intersects 12:00-13:30 on its
// start date.
func OverlapsLunch(slot domain.CandidateSlot) bool {
	return domain.Overlaps(slot.Start, slot.End,
		clockOn(slot.Start, 0, lunchStartHour, lunchStartMin),
		clockOn(slot.Start, 0, lunchEndHour, lunchEndMin))
}
