package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/domain"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// parseAttendee reads "id" or "id:role". A bare id is a required attendee.
func parseAttendee(s string) (domain.MeetingAttendee, error) {
	id, role, hasRole := strings.Cut(strings.TrimSpace(s), ":")
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.MeetingAttendee{}, &app.SuggestError{
			Code:    app.ErrInvalidAttendee,
			Message: fmt.Sprintf("attendee %q has no person id", s),
		}
	}
	if !hasRole {
		return domain.MeetingAttendee{PersonID: id, Role: domain.AttendeeRequired}, nil
	}
	r, ok := domain.ParseAttendeeRole(role)
	if !ok {
		return domain.MeetingAttendee{}, &app.SuggestError{
			Code:    app.ErrInvalidAttendee,
			Message: fmt.Sprintf("attendee %q: unknown role %q (want organizer, required or optional)", id, role),
		}
	}
	return domain.MeetingAttendee{PersonID: id, Role: r}, nil
}

// parseDate reads YYYY-MM-DD as midnight in loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, &app.SuggestError{
			Code:    app.ErrInvalidTargetDate,
			Message: fmt.Sprintf("%q is not a YYYY-MM-DD date", s),
		}
	}
	return d, nil
}

// parseDateTime accepts "YYYY-MM-DD HH:MM" in loc or a full RFC 3339 stamp.
func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(dateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%q is not a \"YYYY-MM-DD HH:MM\" or RFC 3339 time", s)
}

// parseMeetingDuration accepts Go durations ("90m", "1h30m") or a bare number
// of minutes.
func parseMeetingDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	d, err := time.ParseDuration(s)
	if err != nil {
		min, convErr := strconv.Atoi(s)
		if convErr != nil {
			return 0, &app.SuggestError{
				Code:    app.ErrInvalidDuration,
				Message: fmt.Sprintf("%q is not a duration", s),
			}
		}
		d = time.Duration(min) * time.Minute
	}
	if d <= 0 {
		return 0, &app.SuggestError{
			Code:    app.ErrInvalidDuration,
			Message: fmt.Sprintf("duration must be positive, got %s", s),
		}
	}
	return d, nil
}

// splitIDs flattens repeated and comma-separated id flags.
func splitIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
