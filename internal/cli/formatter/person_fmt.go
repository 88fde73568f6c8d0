package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quorum/internal/domain"
)

// FormatPersonList renders people as an aligned table.
func FormatPersonList(people []*domain.Person) string {
	if len(people) == 0 {
		return Dim("No people found.") + "\n"
	}

	headers := []string{"ID", "NAME", "TEAM", "ROLE", "EMAIL"}
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{
			StyleDim.Render(p.ID),
			StyleBold.Render(p.Name),
			p.Team,
			RoleBadge(p.Role),
			Dim(p.Email),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPerson renders a single person in a box.
func FormatPerson(p *domain.Person) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("ID   "), p.ID))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Team "), p.Team))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Role "), RoleBadge(p.Role)))
	b.WriteString(fmt.Sprintf("%s  %s", Dim("Email"), p.Email))
	return RenderBox(p.Name, b.String())
}

// FormatTeams renders team names one per line.
func FormatTeams(teams []string) string {
	if len(teams) == 0 {
		return Dim("No teams found.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Teams"))
	b.WriteString("\n")
	for _, t := range teams {
		b.WriteString("  " + t + "\n")
	}
	return b.String()
}
