package domain

// contributorPriority is the rank given to contributors and unknown roles.
const contributorPriority = 8

// rolePriorities ranks roles for ordering people; lower is more senior.
var rolePriorities = map[Role]int{
	RolePresident:        1,
	RoleVicePresident:    2,
	RoleManagingDirector: 3,
	RoleMaster:           4,
	RoleProjectLead:      5,
	RoleGroupLead:        5,
	RoleTeamLead:         6,
	RolePartLead:         6,
	RoleCA:               7,
	RoleEA:               7,
	RoleDXA:              7,
	RoleMCA:              7,
	RoleMEA:              7,
	RoleMDXA:             7,
	RoleContributor:      contributorPriority,
}

// roleWeights measures how costly it is to lose an attendee with a given
// role. Roles missing from the table weigh 1.
var roleWeights = map[Role]float64{
	RolePresident:        10,
	RoleVicePresident:    8,
	RoleManagingDirector: 6,
	RoleMaster:           5,
	RoleProjectLead:      3,
	RoleGroupLead:        3,
	RoleTeamLead:         2,
	RolePartLead:         2,
	RoleContributor:      1,
}

var executiveRoles = map[Role]bool{
	RolePresident:        true,
	RoleVicePresident:    true,
	RoleManagingDirector: true,
	RoleMaster:           true,
}

var seniorLeaderRoles = map[Role]bool{
	RoleProjectLead: true,
	RoleGroupLead:   true,
	RoleTeamLead:    true,
	RolePartLead:    true,
}

// RolePriority returns the sort rank for a role (lower = more senior).
// Unknown roles rank as contributors.
func RolePriority(r Role) int {
	if p, ok := rolePriorities[r]; ok {
		return p
	}
	return contributorPriority
}

// RoleWeight returns the executive-presence weight for a role.
func RoleWeight(r Role) float64 {
	if w, ok := roleWeights[r]; ok {
		return w
	}
	return 1
}

// IsExecutiveRole reports whether r belongs to the executive set.
func IsExecutiveRole(r Role) bool {
	return executiveRoles[r]
}

// IsLeaderRole reports whether r is an executive or senior-leader role.
func IsLeaderRole(r Role) bool {
	return executiveRoles[r] || seniorLeaderRoles[r]
}

// ExecutiveRoles lists the executive roles, most senior first.
func ExecutiveRoles() []Role {
	return []Role{RolePresident, RoleVicePresident, RoleManagingDirector, RoleMaster}
}

// LeaderRoles lists executive and senior-leader roles, most senior first.
func LeaderRoles() []Role {
	return append(ExecutiveRoles(), RoleProjectLead, RoleGroupLead, RoleTeamLead, RolePartLead)
}
