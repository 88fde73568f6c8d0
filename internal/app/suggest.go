package app

import (
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
)

const DefaultMaxSuggestions = 10

type SuggestRequest struct {
	Meeting        domain.MeetingRequest
	Now            *time.Time
	MaxSuggestions int
}

func NewSuggestRequest(meeting domain.MeetingRequest) SuggestRequest {
	return SuggestRequest{
		Meeting:        meeting,
		MaxSuggestions: DefaultMaxSuggestions,
	}
}

type SuggestResponse struct {
	GeneratedAt    time.Time
	TargetDate     time.Time
	Duration       time.Duration
	CandidateCount int
	RequiredCount  int
	Suggestions    []TimeSlotSuggestion
	Warnings       []string
}

type SuggestErrorCode string

const (
	ErrInvalidDuration   SuggestErrorCode = "INVALID_DURATION"
	ErrInvalidTargetDate SuggestErrorCode = "INVALID_TARGET_DATE"
	ErrInvalidAttendee   SuggestErrorCode = "INVALID_ATTENDEE"
)

type SuggestError struct {
	Code    SuggestErrorCode
	Message string
}

func (e *SuggestError) Error() string {
	return string(e.Code) + ": " + e.Message
}
