package scheduler

import (
	"fmt"

	"github.com/alexanderramin/quorum/internal/app"
)

type ExplanationLevel string

const (
	LevelOK   ExplanationLevel = "ok"
	LevelWarn ExplanationLevel = "warn"
	LevelBad  ExplanationLevel = "bad"
)

type ExplanationPoint struct {
	Level ExplanationLevel
	Text  string
}

// Explanation is a human-readable account of why a slot was suggested.
type Explanation struct {
	Headline string
	Points   []ExplanationPoint
}

// Explain summarizes a scored suggestion. Attendance always produces a point;
// the other points appear only when they apply.
func Explain(s app.TimeSlotSuggestion) Explanation {
	headline := fmt.Sprintf("%s - %s (attendance %.0f%%, score %.1f)",
		s.Start.Format("2006-01-02 15:04"), s.End.Format("15:04"), s.AttendanceRate()*100, s.TotalScore)
	if n := s.ConflictCount(); n > 0 {
		headline += fmt.Sprintf(" [%d conflicted]", n)
	}

	rate := s.AttendanceRate()
	var points []ExplanationPoint
	switch {
	case rate >= 0.9:
		points = append(points, ExplanationPoint{LevelOK, fmt.Sprintf("High attendance (%.0f%%)", rate*100)})
	case rate >= 0.7:
		points = append(points, ExplanationPoint{LevelWarn, fmt.Sprintf("Fair attendance (%.0f%%)", rate*100)})
	default:
		points = append(points, ExplanationPoint{LevelBad, fmt.Sprintf("Low attendance (%.0f%%)", rate*100)})
	}
	if s.IsPreferredTime {
		points = append(points, ExplanationPoint{LevelOK, "Preferred time of day (10:00 or 15:00)"})
	}
	if s.DateProximityScore >= 0.8 {
		points = append(points, ExplanationPoint{LevelOK, "Close to the target date"})
	}
	if s.IsLunchOverlap {
		points = append(points, ExplanationPoint{LevelWarn, "Overlaps lunch"})
	}
	if n := s.ConflictCount(); n > 0 {
		points = append(points, ExplanationPoint{LevelWarn, fmt.Sprintf("%d attendee(s) have conflicts", n)})
	}

	return Explanation{Headline: headline, Points: points}
}
