package domain

import "time"

type Person struct {
	ID    string
	Name  string
	Team  string
	Email string
	Role  Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Person) RolePriority() int {
	return RolePriority(p.Role)
}

func (p *Person) IsExecutive() bool {
	return IsExecutiveRole(p.Role)
}

// IsLeader is true for executives and senior leaders.
func (p *Person) IsLeader() bool {
	return IsLeaderRole(p.Role)
}
