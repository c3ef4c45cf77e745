package giveaway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connecthq/registrar/internal/apperr"
	"github.com/connecthq/registrar/internal/giveaway"
	"github.com/connecthq/registrar/internal/registration"
)

type staticEntrants struct {
	entrants []registration.Entrant
	err      error
}

func (s staticEntrants) ListEntrants(context.Context) ([]registration.Entrant, error) {
	return s.entrants, s.err
}

func strPtr(s string) *string { return &s }

func TestSelectWinner_Empty(t *testing.T) {
	svc := giveaway.NewService(staticEntrants{}, nil)

	_, err := svc.SelectWinner(context.Background())
	assert.ErrorIs(t, err, giveaway.ErrNoRegistrations)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSelectWinner_UsesPickedIndex(t *testing.T) {
	src := staticEntrants{entrants: []registration.Entrant{
		{Name: "Alice", Workplace: strPtr("Acme")},
		{Name: "Bob"},
		{Name: "Carol", Workplace: strPtr("")},
	}}

	tests := []struct {
		index     int
		name      string
		workplace string
	}{
		{0, "Alice", "Acme"},
		{1, "Bob", giveaway.DefaultWorkplace},
		{2, "Carol", giveaway.DefaultWorkplace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotN int
			svc := giveaway.NewService(src, nil).WithPicker(func(n int) int {
				gotN = n
				return tt.index
			})

			w, err := svc.SelectWinner(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 3, gotN)
			assert.Equal(t, tt.name, w.Name)
			assert.Equal(t, tt.workplace, w.Workplace)
		})
	}
}

func TestSelectWinner_WinnerComesFromPool(t *testing.T) {
	pool := map[string]bool{"Alice": true, "Bob": true, "Carol": true, "Dave": true}
	var entrants []registration.Entrant
	for name := range pool {
		entrants = append(entrants, registration.Entrant{Name: name})
	}
	svc := giveaway.NewService(staticEntrants{entrants: entrants}, nil)

	for range 200 {
		w, err := svc.SelectWinner(context.Background())
		require.NoError(t, err)
		assert.True(t, pool[w.Name], w.Name)
	}
}

func TestSelectWinner_SingleEntrantRepeats(t *testing.T) {
	svc := giveaway.NewService(staticEntrants{entrants: []registration.Entrant{{Name: "Alice"}}}, nil)

	for range 3 {
		w, err := svc.SelectWinner(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Alice", w.Name)
	}
}

func TestSelectWinner_RepoError(t *testing.T) {
	svc := giveaway.NewService(staticEntrants{err: errors.New("timeout")}, nil)

	_, err := svc.SelectWinner(context.Background())
	assert.Equal(t, apperr.KindPersistence, apperr.KindOf(err))
}
