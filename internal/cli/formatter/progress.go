package formatter

import (
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// AttendanceBar renders a fraction of attendees as a bar like ████░░.
// The bar is green at 90% and above, yellow from 70%, red below.
func AttendanceBar(rate float64, width int) string {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(rate*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case rate < 0.7:
		style = StyleRed
	case rate < 0.9:
		style = StyleYellow
	}
	return style.Render(bar)
}
