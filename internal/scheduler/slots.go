package scheduler

import (
	"time"

	"github.com/alexanderramin/quorum/internal/domain"
)

// GenerationPolicy bounds the candidate search around a target date.
type GenerationPolicy struct {
	RadiusDays   int
	DayStartHour int
	DayEndHour   int
	Step         time.Duration
	SkipWeekends bool
}

func DefaultPolicy() GenerationPolicy {
	return GenerationPolicy{
		RadiusDays:   7,
		DayStartHour: 8,
		DayEndHour:   20,
		Step:         30 * time.Minute,
		SkipWeekends: true,
	}
}

// SearchWindow returns the [lower, upper] bounds candidates must fall within:
// lower is max(now, target midnight - radius), upper is the business-day end
// on target + radius.
func (p GenerationPolicy) SearchWindow(target, now time.Time) (time.Time, time.Time) {
	now = now.In(target.Location())
	lower := clockOn(target, -p.RadiusDays, 0, 0)
	if now.After(lower) {
		lower = now
	}
	upper := clockOn(target, p.RadiusDays, p.DayEndHour, 0)
	return lower, upper
}

// GenerateSlots enumerates candidate slots in chronological order. Every start
// lies on a step boundary within business hours, and every slot ends no later
// than the business-day end of its own date.
func GenerateSlots(target time.Time, duration time.Duration, now time.Time, policy GenerationPolicy) []domain.CandidateSlot {
	if duration <= 0 || policy.Step <= 0 {
		return nil
	}
	lower, upper := policy.SearchWindow(target, now)
	if upper.Before(lower) {
		return nil
	}

	var slots []domain.CandidateSlot
	for offset := 0; ; offset++ {
		dayStart := clockOn(lower, offset, policy.DayStartHour, 0)
		if dayStart.After(upper) {
			break
		}
		if policy.SkipWeekends && isWeekend(dayStart) {
			continue
		}
		dayEnd := clockOn(lower, offset, policy.DayEndHour, 0)
		for start := dayStart; !start.After(dayEnd); start = start.Add(policy.Step) {
			if start.Before(lower) {
				continue
			}
			slot := domain.NewCandidateSlot(start, duration)
			if slot.End.After(dayEnd) {
				break
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

// clockOn returns hour:minute wall-clock time on the date dayOffset days after
// t's date, in t's location. It stays correct on days whose midnight is
// skipped by a DST change.
func clockOn(t time.Time, dayOffset, hour, minute int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+dayOffset, hour, minute, 0, 0, t.Location())
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// daysBetween returns the absolute calendar-day distance between two dates,
// ignoring clock time and DST shifts.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	diff := int(da.Sub(db).Hours() / 24)
	if diff < 0 {
		return -diff
	}
	return diff
}
