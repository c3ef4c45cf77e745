// Package giveaway draws a random winner from the registrants.
package giveaway

import (
	"context"
	"math/rand/v2"

	"github.com/connecthq/registrar/internal/apperr"
	"github.com/connecthq/registrar/internal/event"
	"github.com/connecthq/registrar/internal/registration"
)

// DefaultWorkplace is reported for winners who left the workplace empty.
const DefaultWorkplace = "Independent"

// ErrNoRegistrations is returned when there is nobody to draw from.
var ErrNoRegistrations = apperr.NotFound("NO_REGISTRATIONS", "No registrations found")

// EntrantLister provides the pool of entrants.
type EntrantLister interface {
	ListEntrants(ctx context.Context) ([]registration.Entrant, error)
}

// Winner is the outcome of a draw.
type Winner struct {
	Name      string `json:"name"`
	Workplace string `json:"workplace"`
}

// Service selects winners. It keeps no memory of earlier draws.
type Service struct {
	entrants EntrantLister
	events   event.Publisher
	pick     func(n int) int
}

// NewService creates a giveaway Service drawing with math/rand/v2.
func NewService(entrants EntrantLister, events event.Publisher) *Service {
	if events == nil {
		events = event.Discard
	}
	return &Service{entrants: entrants, events: events, pick: rand.IntN}
}

// WithPicker replaces the index source; pick(n) must return a value in [0, n).
func (s *Service) WithPicker(pick func(n int) int) *Service {
	s.pick = pick
	return s
}

// SelectWinner draws one registrant uniformly at random.
func (s *Service) SelectWinner(ctx context.Context) (*Winner, error) {
	entrants, err := s.entrants.ListEntrants(ctx)
	if err != nil {
		return nil, apperr.Persistence("Failed to select winner", err)
	}
	if len(entrants) == 0 {
		return nil, ErrNoRegistrations
	}

	chosen := entrants[s.pick(len(entrants))]
	w := &Winner{Name: chosen.Name, Workplace: DefaultWorkplace}
	if chosen.Workplace != nil && *chosen.Workplace != "" {
		w.Workplace = *chosen.Workplace
	}

	s.events.Publish(event.New(event.WinnerSelected, w))
	return w, nil
}
