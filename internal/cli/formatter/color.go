package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetColorEnabled switches styled output on or off for the whole process.
func SetColorEnabled(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ScoreColor grades a total score: 85 and above is green, 65 and above
// yellow, anything lower red.
func ScoreColor(score float64) lipgloss.Style {
	switch {
	case score >= 85:
		return StyleGreen
	case score >= 65:
		return StyleYellow
	default:
		return StyleRed
	}
}

// LevelIndicator returns the marker for an explanation point.
func LevelIndicator(level scheduler.ExplanationLevel) string {
	switch level {
	case scheduler.LevelOK:
		return StyleGreen.Render("✔")
	case scheduler.LevelWarn:
		return StyleYellow.Render("!")
	case scheduler.LevelBad:
		return StyleRed.Render("✖")
	default:
		return StyleDim.Render("·")
	}
}

// RoleBadge renders a role label colored by seniority.
func RoleBadge(r domain.Role) string {
	switch {
	case r == domain.RoleContributor:
		return StyleDim.Render("contributor")
	case domain.IsExecutiveRole(r):
		return StylePurple.Render(string(r))
	case domain.IsLeaderRole(r):
		return StyleBlue.Render(string(r))
	default:
		return StyleFg.Render(string(r))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
