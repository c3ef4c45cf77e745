// Package countdown computes the time left until the daily event start.
package countdown

import (
	"fmt"
	"time"
)

// Clock targets a fixed wall-clock time of day in a location.
type Clock struct {
	hour   int
	minute int
	loc    *time.Location
}

// Remaining is the time left until the next target.
type Remaining struct {
	Target  time.Time `json:"target"`
	Hours   int       `json:"hours"`
	Minutes int       `json:"minutes"`
	Seconds int       `json:"seconds"`
}

// Parse builds a Clock from an "HH:MM" time of day and an IANA location name.
// An empty location means time.Local.
func Parse(at, location string) (*Clock, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return nil, fmt.Errorf("parsing event start %q: %w", at, err)
	}

	loc := time.Local
	if location != "" {
		loc, err = time.LoadLocation(location)
		if err != nil {
			return nil, fmt.Errorf("loading location %q: %w", location, err)
		}
	}

	return &Clock{hour: t.Hour(), minute: t.Minute(), loc: loc}, nil
}

// Next returns today's target, or tomorrow's once today's has passed.
func (c *Clock) Next(now time.Time) time.Time {
	now = now.In(c.loc)
	target := time.Date(now.Year(), now.Month(), now.Day(), c.hour, c.minute, 0, 0, c.loc)
	if now.After(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

// Remaining returns the countdown from now to Next(now).
func (c *Clock) Remaining(now time.Time) Remaining {
	target := c.Next(now)
	left := target.Sub(now)
	if left < 0 {
		left = 0
	}

	total := int(left / time.Second)
	return Remaining{
		Target:  target,
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}
