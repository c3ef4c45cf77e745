package registration

import (
	"context"

	"github.com/connecthq/registrar/internal/apperr"
	"github.com/connecthq/registrar/internal/team"
)

// ErrDuplicateEmail is returned when the email is already registered.
var ErrDuplicateEmail = apperr.Conflict("DUPLICATE_EMAIL", "This email is already registered")

// Repository provides persistence for registrations.
type Repository interface {
	// Create inserts reg. When newTeam is non-nil the team is inserted first
	// and reg joins it; both inserts commit or roll back together.
	Create(ctx context.Context, reg *Registration, newTeam *team.Team) error
	List(ctx context.Context) ([]Registration, error)
	UpdateTeam(ctx context.Context, id int64, teamID *int64) error
	Delete(ctx context.Context, id int64) error
	ListEntrants(ctx context.Context) ([]Entrant, error)
	Count(ctx context.Context) (int, error)
	CountIndividuals(ctx context.Context) (int, error)
}
