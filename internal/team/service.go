package team

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/connecthq/registrar/internal/apperr"
	"github.com/connecthq/registrar/internal/event"
	"github.com/connecthq/registrar/internal/validation"
)

// Service implements team creation, listing and deletion.
type Service struct {
	repo   Repository
	events event.Publisher
}

// NewService creates a new team Service. A nil publisher discards events.
func NewService(repo Repository, events event.Publisher) *Service {
	if events == nil {
		events = event.Discard
	}
	return &Service{repo: repo, events: events}
}

// Create trims name and inserts a team with it.
func (s *Service) Create(ctx context.Context, name string) (*Team, error) {
	if errs := validation.ValidateTeamName("name", name); len(errs) > 0 {
		return nil, apperr.Validation("Team name is required", errs)
	}

	t := &Team{Name: strings.TrimSpace(name)}
	if err := s.repo.Create(ctx, t); err != nil {
		if errors.Is(err, ErrDuplicateTeamName) {
			return nil, err
		}
		return nil, apperr.Persistence("Failed to create team. Please try again.", err)
	}

	slog.Info("team created", "teamId", t.ID, "name", t.Name)
	s.events.Publish(event.New(event.TeamCreated, map[string]any{"id": t.ID, "name": t.Name}))
	return t, nil
}

// List returns teams ordered by name, optionally only those with room left.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Team, error) {
	teams, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Persistence("Failed to fetch teams. Please try again.", err)
	}
	return teams, nil
}

// Delete removes a team and, through the cascade, its registrations.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Validation("Team ID is required", []apperr.FieldError{{Field: "id", Message: "id is required"}})
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Persistence("Failed to delete team. Please try again.", err)
	}

	slog.Info("team deleted", "teamId", id)
	s.events.Publish(event.New(event.TeamDeleted, map[string]int64{"id": id}))
	return nil
}
