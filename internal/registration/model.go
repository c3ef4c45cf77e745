package registration

import "time"

// Registration represents a row in the registrations table. TeamName is
// populated by joined reads only.
type Registration struct {
	ID          int64
	Name        string
	Email       string
	Workplace   *string
	ProjectIdea *string
	TeamID      *int64
	TeamName    *string
	CreatedAt   time.Time
}

// Entrant is the subset of a registration used for the giveaway draw.
type Entrant struct {
	Name      string
	Workplace *string
}

// SubmitInput is a registration form submission. A non-blank NewTeamName
// takes precedence over TeamID.
type SubmitInput struct {
	Name        string
	Email       string
	Workplace   string
	ProjectIdea string
	TeamID      *int64
	NewTeamName string
}
