package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusyInterval_AlignToSeconds(t *testing.T) {
	base := time.Date(2025, 3, 19, 10, 0, 0, 0, time.UTC)

	b := &BusyInterval{
		Start:     base.Add(250 * time.Millisecond),
		End:       base.Add(30*time.Minute + 750*time.Millisecond),
		CreatedAt: base.Add(900 * time.Millisecond),
	}
	b.AlignToSeconds()
	assert.Equal(t, base, b.Start)
	assert.Equal(t, base.Add(30*time.Minute+time.Second), b.End)
	assert.Equal(t, base, b.CreatedAt)

	whole := &BusyInterval{Start: base, End: base.Add(time.Hour)}
	whole.AlignToSeconds()
	assert.Equal(t, base.Add(time.Hour), whole.End)

	// A sub-second interval still covers a full second.
	tiny := &BusyInterval{Start: base.Add(200 * time.Millisecond), End: base.Add(700 * time.Millisecond)}
	tiny.AlignToSeconds()
	assert.Equal(t, time.Second, tiny.Duration())

	inverted := &BusyInterval{Start: base.Add(700 * time.Millisecond), End: base.Add(200 * time.Millisecond)}
	inverted.AlignToSeconds()
	assert.False(t, inverted.Start.Before(inverted.End))
}
