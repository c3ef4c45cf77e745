// Package event defines the roster change notifications published by the
// services and consumed by the live feed.
package event

import "time"

// Event types.
const (
	RegistrationCreated = "registration.created"
	RegistrationUpdated = "registration.updated"
	RegistrationDeleted = "registration.deleted"
	TeamCreated         = "team.created"
	TeamDeleted         = "team.deleted"
	WinnerSelected      = "winner.selected"
	SummaryUpdated      = "summary.updated"
)

// Event is a single change notification.
type Event struct {
	Type    string    `json:"type"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// New stamps an event with the current time.
func New(typ string, payload any) Event {
	return Event{Type: typ, Payload: payload, At: time.Now().UTC()}
}

// Publisher accepts events. Implementations must not block the caller.
type Publisher interface {
	Publish(e Event)
}

// Discard is a Publisher that drops every event.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(Event) {}
