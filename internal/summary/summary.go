// Package summary reports headcounts for the registration dashboard.
package summary

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/connecthq/registrar/internal/apperr"
)

// RegistrationCounter counts registrations.
type RegistrationCounter interface {
	Count(ctx context.Context) (int, error)
	CountIndividuals(ctx context.Context) (int, error)
}

// TeamCounter counts teams.
type TeamCounter interface {
	Count(ctx context.Context) (int, error)
	CountAvailable(ctx context.Context) (int, error)
}

// Summary holds the dashboard headcounts.
type Summary struct {
	Registrations int `json:"registrations"`
	Individuals   int `json:"individuals"`
	Teams         int `json:"teams"`
	OpenTeams     int `json:"openTeams"`
}

// Service computes a Summary.
type Service struct {
	regs  RegistrationCounter
	teams TeamCounter
}

// NewService creates a summary Service.
func NewService(regs RegistrationCounter, teams TeamCounter) *Service {
	return &Service{regs: regs, teams: teams}
}

// Get runs the four counts concurrently. The first failure cancels the rest.
func (s *Service) Get(ctx context.Context) (*Summary, error) {
	var sum Summary
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		sum.Registrations, err = s.regs.Count(gCtx)
		return err
	})
	g.Go(func() (err error) {
		sum.Individuals, err = s.regs.CountIndividuals(gCtx)
		return err
	})
	g.Go(func() (err error) {
		sum.Teams, err = s.teams.Count(gCtx)
		return err
	})
	g.Go(func() (err error) {
		sum.OpenTeams, err = s.teams.CountAvailable(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.Persistence("Failed to load summary", err)
	}
	return &sum, nil
}
