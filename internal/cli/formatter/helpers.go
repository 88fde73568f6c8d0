package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(1, 2)

// RenderBox frames content in a rounded border, with title as an uppercase
// heading when it is not empty.
func RenderBox(title, content string) string {
	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// DayOffset describes how far t's date is from target's date.
func DayOffset(t, target time.Time) string {
	ty, tm, td := t.Date()
	gy, gm, gd := target.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(gy, gm, gd, 0, 0, 0, 0, time.UTC)
	days := int(a.Sub(b).Hours() / 24)

	switch {
	case days == 0:
		return "Target day"
	case days == 1:
		return "+1 day"
	case days == -1:
		return "-1 day"
	case days > 0:
		return fmt.Sprintf("+%d days", days)
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// TimeRange renders "Mon 2006-01-02 15:04-16:04" for a same-day window.
func TimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s %s %s-%s",
		start.Format("Mon"), start.Format(DateLayout), start.Format(ClockLayout), end.Format(ClockLayout))
}

// TruncID shortens a generated id to its first eight characters, dimmed.
func TruncID(id string) string {
	return StyleDim.Render(id[:min(len(id), 8)])
}

// FormatDuration converts a duration into a human-friendly form such as
// "1h 30m".
func FormatDuration(d time.Duration) string {
	min := int(d.Minutes())
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
