package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/alexanderramin/quorum/internal/domain"
)

// ICSResult holds busy intervals read from a calendar file and how many
// events were passed over.
type ICSResult struct {
	Busy    []*domain.BusyInterval
	Skipped int
}

// LoadICS reads an iCalendar file and converts its events into busy
// intervals owned by ownerID. Floating times are read in loc.
func LoadICS(path, ownerID string, loc *time.Location) (*ICSResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseICS(f, ownerID, loc)
}

// ParseICS decodes every VCALENDAR in r. Transparent, cancelled and
// zero-length events do not block time and are skipped. Recurrence rules are
// not expanded; only the first occurrence is imported.
func ParseICS(r io.Reader, ownerID string, loc *time.Location) (*ICSResult, error) {
	if loc == nil {
		loc = time.Local
	}
	now := time.Now().UTC().Truncate(time.Second)
	result := &ICSResult{}

	dec := ical.NewDecoder(r)
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding calendar: %w", err)
		}

		for _, event := range cal.Events() {
			if !blocksTime(event) {
				result.Skipped++
				continue
			}
			start, err := event.DateTimeStart(loc)
			if err != nil {
				return nil, fmt.Errorf("reading DTSTART: %w", err)
			}
			end, err := event.DateTimeEnd(loc)
			if err != nil {
				return nil, fmt.Errorf("reading DTEND: %w", err)
			}
			if start.IsZero() || !start.Before(end) {
				result.Skipped++
				continue
			}

			title := "Busy"
			if summary := event.Props.Get(ical.PropSummary); summary != nil && summary.Value != "" {
				title = summary.Value
			}
			result.Busy = append(result.Busy, &domain.BusyInterval{
				ID:        uuid.New().String(),
				OwnerID:   ownerID,
				Title:     title,
				Start:     start,
				End:       end,
				CreatedAt: now,
			})
		}
	}

	return result, nil
}

func blocksTime(event ical.Event) bool {
	if transp := event.Props.Get(ical.PropTransparency); transp != nil &&
		strings.EqualFold(transp.Value, "TRANSPARENT") {
		return false
	}
	if status := event.Props.Get(ical.PropStatus); status != nil &&
		strings.EqualFold(status.Value, "CANCELLED") {
		return false
	}
	return true
}
