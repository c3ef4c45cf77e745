package registration

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/connecthq/registrar/internal/apperr"
	"github.com/connecthq/registrar/internal/event"
	"github.com/connecthq/registrar/internal/team"
	"github.com/connecthq/registrar/internal/validation"
)

// Notifier is told about every successful registration.
type Notifier interface {
	RegistrationConfirmed(ctx context.Context, reg *Registration) error
}

// Service implements registration submission and roster management.
type Service struct {
	repo     Repository
	events   event.Publisher
	notifier Notifier
}

// NewService creates a new registration Service. A nil publisher discards
// events and a nil notifier disables confirmations.
func NewService(repo Repository, events event.Publisher, notifier Notifier) *Service {
	if events == nil {
		events = event.Discard
	}
	return &Service{repo: repo, events: events, notifier: notifier}
}

// Submit validates and stores a registration, creating the requested new team
// in the same transaction.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Registration, error) {
	if err := validateSubmit(in); err != nil {
		return nil, err
	}

	reg := &Registration{
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Workplace:   optional(in.Workplace),
		ProjectIdea: optional(in.ProjectIdea),
	}

	var newTeam *team.Team
	if name := strings.TrimSpace(in.NewTeamName); name != "" {
		newTeam = &team.Team{Name: name}
	} else if in.TeamID != nil && *in.TeamID > 0 {
		id := *in.TeamID
		reg.TeamID = &id
	}

	if err := s.repo.Create(ctx, reg, newTeam); err != nil {
		if errors.Is(err, team.ErrDuplicateTeamName) || errors.Is(err, ErrDuplicateEmail) {
			return nil, err
		}
		return nil, apperr.Persistence("Failed to register. Please try again.", err)
	}

	logAttrs := []any{"registrationId", reg.ID}
	if reg.TeamID != nil {
		logAttrs = append(logAttrs, "teamId", *reg.TeamID)
	}
	slog.Info("registration created", logAttrs...)

	if newTeam != nil {
		s.events.Publish(event.New(event.TeamCreated, map[string]any{"id": newTeam.ID, "name": newTeam.Name}))
	}
	s.events.Publish(event.New(event.RegistrationCreated, map[string]any{
		"id":      reg.ID,
		"name":    reg.Name,
		"team_id": reg.TeamID,
	}))

	if s.notifier != nil {
		if err := s.notifier.RegistrationConfirmed(ctx, reg); err != nil {
			slog.Warn("failed to send registration confirmation", "error", err, "registrationId", reg.ID)
		}
	}

	return reg, nil
}

func validateSubmit(in SubmitInput) error {
	fields := validation.ValidateRegistration(validation.Registration{Name: in.Name, Email: in.Email})
	if strings.TrimSpace(in.NewTeamName) != "" {
		fields = append(fields, validation.ValidateTeamName("newTeamName", in.NewTeamName)...)
	}
	if len(fields) == 0 {
		return nil
	}

	message := fields[0].Message
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		message = "Name and email are required"
	}
	return apperr.Validation(message, fields)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// List returns the full roster in display order.
func (s *Service) List(ctx context.Context) ([]Registration, error) {
	regs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("Failed to fetch registrations. Please try again.", err)
	}
	return regs, nil
}

// Grouped returns the roster bucketed by team.
func (s *Service) Grouped(ctx context.Context) ([]Group, int, error) {
	regs, err := s.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return GroupByTeam(regs), len(regs), nil
}

// UpdateTeam moves a registrant to teamID, or makes them an individual
// participant when teamID is nil or not positive.
func (s *Service) UpdateTeam(ctx context.Context, memberID int64, teamID *int64) error {
	if memberID <= 0 {
		return errMemberIDRequired
	}
	if teamID != nil && *teamID <= 0 {
		teamID = nil
	}

	if err := s.repo.UpdateTeam(ctx, memberID, teamID); err != nil {
		return apperr.Persistence("Failed to update member team. Please try again.", err)
	}

	s.events.Publish(event.New(event.RegistrationUpdated, map[string]any{"id": memberID, "team_id": teamID}))
	return nil
}

// Delete removes a registration. A missing id is not an error.
func (s *Service) Delete(ctx context.Context, memberID int64) error {
	if memberID <= 0 {
		return errMemberIDRequired
	}

	if err := s.repo.Delete(ctx, memberID); err != nil {
		return apperr.Persistence("Failed to delete member. Please try again.", err)
	}

	slog.Info("registration deleted", "registrationId", memberID)
	s.events.Publish(event.New(event.RegistrationDeleted, map[string]int64{"id": memberID}))
	return nil
}

var errMemberIDRequired = apperr.Validation("Member ID is required", []apperr.FieldError{
	{Field: "memberId", Message: "memberId is required"},
})
