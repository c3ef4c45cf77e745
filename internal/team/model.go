package team

import "time"

// MaxMembers is the number of registrations a team can hold.
const MaxMembers = 5

// Team represents a row in the teams table. MemberCount is filled by List only.
type Team struct {
	ID          int64
	Name        string
	CreatedAt   time.Time
	MemberCount int
}

// Full reports whether the team has reached MaxMembers.
func (t *Team) Full() bool {
	return t.MemberCount >= MaxMembers
}

// ListFilter holds optional filters for listing teams.
type ListFilter struct {
	// AvailableOnly restricts the result to teams below MaxMembers.
	AvailableOnly bool
}
