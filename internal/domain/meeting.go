package domain

import "time"

type MeetingAttendee struct {
	PersonID string
	Role     AttendeeRole
}

// MeetingRequest is the input to a suggestion run. It is never persisted.
type MeetingRequest struct {
	Attendees  []MeetingAttendee
	TargetDate time.Time
	Duration   time.Duration
}

// RequiredAttendeeIDs returns the organizer and required attendee ids in
// request order, without duplicates.
func (m MeetingRequest) RequiredAttendeeIDs() []string {
	seen := make(map[string]bool, len(m.Attendees))
	ids := make([]string, 0, len(m.Attendees))
	for _, a := range m.Attendees {
		if !a.Role.CountsTowardScore() || seen[a.PersonID] {
			continue
		}
		seen[a.PersonID] = true
		ids = append(ids, a.PersonID)
	}
	return ids
}

// CandidateSlot is one generated time window under evaluation.
type CandidateSlot struct {
	Start time.Time
	End   time.Time
}

func NewCandidateSlot(start time.Time, duration time.Duration) CandidateSlot {
	return CandidateSlot{Start: start, End: start.Add(duration)}
}
