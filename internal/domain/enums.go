package domain

import "strings"

// Role is a seniority tag from the closed set below. The empty role is an
// individual contributor.
type Role string

const (
	RolePresident        Role = "president"
	RoleVicePresident    Role = "vice_president"
	RoleManagingDirector Role = "managing_director"
	RoleMaster           Role = "master"

	RoleProjectLead Role = "project_lead"
	RoleGroupLead   Role = "group_lead"
	RoleTeamLead    Role = "team_lead"
	RolePartLead    Role = "part_lead"

	RoleCA   Role = "ca"
	RoleEA   Role = "ea"
	RoleDXA  Role = "dxa"
	RoleMCA  Role = "mca"
	RoleMEA  Role = "mea"
	RoleMDXA Role = "mdxa"

	RoleContributor Role = ""
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[Role]bool{
	RolePresident: true, RoleVicePresident: true, RoleManagingDirector: true, RoleMaster: true,
	RoleProjectLead: true, RoleGroupLead: true, RoleTeamLead: true, RolePartLead: true,
	RoleCA: true, RoleEA: true, RoleDXA: true, RoleMCA: true, RoleMEA: true, RoleMDXA: true,
	RoleContributor: true,
}

// AttendeeRole is the part a person plays in one meeting.
type AttendeeRole string

const (
	AttendeeOrganizer AttendeeRole = "organizer"
	AttendeeRequired  AttendeeRole = "required"
	AttendeeOptional  AttendeeRole = "optional"
)

// ValidAttendeeRoles is the canonical set of accepted in-meeting roles.
var ValidAttendeeRoles = map[AttendeeRole]bool{
	AttendeeOrganizer: true,
	AttendeeRequired:  true,
	AttendeeOptional:  true,
}

// CountsTowardScore reports whether attendees with this role participate in
// availability and executive-presence scoring.
func (r AttendeeRole) CountsTowardScore() bool {
	return r == AttendeeOrganizer || r == AttendeeRequired
}

var roleAliases = map[string]Role{
	"contributor": RoleContributor,
	"vp":          RoleVicePresident,
	"md":          RoleManagingDirector,
	"pl":          RoleProjectLead,
	"tl":          RoleTeamLead,
}

// ParseRole normalizes a free-form role string. Case, surrounding space and
// hyphen or space separators are ignored; a few common abbreviations are
// accepted.
func ParseRole(s string) (Role, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	if r, ok := roleAliases[norm]; ok {
		return r, true
	}
	r := Role(norm)
	return r, ValidRoles[r]
}

// ParseAttendeeRole accepts organizer, required or optional in any case.
// The empty string defaults to required.
func ParseAttendeeRole(s string) (AttendeeRole, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" {
		return AttendeeRequired, true
	}
	r := AttendeeRole(norm)
	return r, ValidAttendeeRoles[r]
}
