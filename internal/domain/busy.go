package domain

import "time"

// BusyInterval is a half-open [Start, End) block on one person's calendar.
type BusyInterval struct {
	ID        string
	OwnerID   string
	Title     string
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
}

// Overlaps reports whether the interval intersects [start, end).
// Touching endpoints do not overlap.
func (b *BusyInterval) Overlaps(start, end time.Time) bool {
	return Overlaps(b.Start, b.End, start, end)
}

// Duration returns End - Start.
func (b *BusyInterval) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// AlignToSeconds widens the interval to whole seconds, rounding Start down and
// End up, so it never loses coverage when stored at second precision. Empty or
// inverted intervals are left alone for validation to reject.
func (b *BusyInterval) AlignToSeconds() {
	if !b.Start.Before(b.End) {
		return
	}
	b.Start = b.Start.Truncate(time.Second)
	if end := b.End.Truncate(time.Second); end.Before(b.End) {
		b.End = end.Add(time.Second)
	} else {
		b.End = end
	}
	b.CreatedAt = b.CreatedAt.Truncate(time.Second)
}

// Overlaps reports whether [s1, e1) and [s2, e2) intersect.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
