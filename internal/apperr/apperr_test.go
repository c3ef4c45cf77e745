package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/connecthq/registrar/internal/apperr"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperr.Kind
	}{
		{"validation", apperr.Validation("bad", nil), apperr.KindValidation},
		{"conflict", apperr.Conflict("DUP", "dup"), apperr.KindConflict},
		{"not found", apperr.NotFound("NONE", "none"), apperr.KindNotFound},
		{"persistence", apperr.Persistence("failed", errors.New("boom")), apperr.KindPersistence},
		{"wrapped", fmt.Errorf("outer: %w", apperr.Conflict("DUP", "dup")), apperr.KindConflict},
		{"plain error", errors.New("plain"), 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.KindOf(tt.err))
		})
	}
}

func TestPersistence_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Persistence("Failed to list teams", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INTERNAL_ERROR", err.Code)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSentinelIdentity(t *testing.T) {
	sentinel := apperr.Conflict("DUPLICATE_EMAIL", "This email is already registered")
	wrapped := fmt.Errorf("inserting registration: %w", sentinel)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.Equal(t, "This email is already registered", sentinel.Error())
}
