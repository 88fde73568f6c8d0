package app

import "time"

type ScoreComponent string

const (
	ComponentAttendance        ScoreComponent = "ATTENDANCE"
	ComponentTimePreference    ScoreComponent = "TIME_PREFERENCE"
	ComponentDateProximity     ScoreComponent = "DATE_PROXIMITY"
	ComponentExecutivePresence ScoreComponent = "EXECUTIVE_PRESENCE"
	ComponentLunchPenalty      ScoreComponent = "LUNCH_PENALTY"
)

// ScoreReason records how one scoring component contributed to a slot's total.
// Value is the component's normalized input, WeightDelta the points it added.
type ScoreReason struct {
	Component   ScoreComponent
	Message     string
	Value       float64
	WeightDelta float64
}

type TimeSlotSuggestion struct {
	Start               time.Time
	End                 time.Time
	TotalScore          float64
	AvailableCount      int
	RequiredCount       int
	ConflictedPersonIDs []string
	IsLunchOverlap      bool
	IsPreferredTime     bool
	DateProximityScore  float64
	Reasons             []ScoreReason
}

// AttendanceRate is the fraction of required attendees free for the slot.
// A meeting with no required attendees is fully attended.
func (s TimeSlotSuggestion) AttendanceRate() float64 {
	if s.RequiredCount == 0 {
		return 1.0
	}
	return float64(s.AvailableCount) / float64(s.RequiredCount)
}

func (s TimeSlotSuggestion) ConflictCount() int {
	return len(s.ConflictedPersonIDs)
}

// Component returns the reason for the given component, if it was scored.
func (s TimeSlotSuggestion) Component(c ScoreComponent) (ScoreReason, bool) {
	for _, r := range s.Reasons {
		if r.Component == c {
			return r, true
		}
	}
	return ScoreReason{}, false
}
