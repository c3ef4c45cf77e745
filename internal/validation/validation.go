// Package validation checks user-supplied registration and team fields.
package validation

import (
	"regexp"
	"strings"

	"github.com/connecthq/registrar/internal/apperr"
)

// emailRegex accepts the basic local@domain.tld shape and nothing stricter.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Registration mirrors the fields needed for registration validation.
type Registration struct {
	Name  string
	Email string
}

// ValidateRegistration validates the required registrant fields.
// Returns a slice of field errors; empty slice means valid.
func ValidateRegistration(req Registration) []apperr.FieldError {
	var errs []apperr.FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, apperr.FieldError{Field: "name", Message: "name is required"})
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errs = append(errs, apperr.FieldError{Field: "email", Message: "email is required"})
	} else if !IsEmail(email) {
		errs = append(errs, apperr.FieldError{Field: "email", Message: "Invalid email format"})
	}

	return errs
}

// ValidateTeamName validates a team name after trimming.
func ValidateTeamName(field, name string) []apperr.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []apperr.FieldError{{Field: field, Message: "Team name is required"}}
	}
	return nil
}

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}
