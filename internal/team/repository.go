package team

import (
	"context"

	"github.com/connecthq/registrar/internal/apperr"
)

// ErrDuplicateTeamName is returned when a team with the same name already exists.
var ErrDuplicateTeamName = apperr.Conflict("DUPLICATE_TEAM_NAME", "A team with this name already exists")

// Repository provides CRUD operations on the teams table.
type Repository interface {
	Create(ctx context.Context, team *Team) error
	List(ctx context.Context, filter ListFilter) ([]Team, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	CountAvailable(ctx context.Context) (int, error)
}
