package summary

import (
	"context"
	"log/slog"
	"time"

	"github.com/connecthq/registrar/internal/event"
)

// Getter computes the current Summary.
type Getter interface {
	Get(ctx context.Context) (*Summary, error)
}

// Broadcaster polls the headcounts and publishes a SummaryUpdated event
// whenever they change.
type Broadcaster struct {
	source   Getter
	events   event.Publisher
	interval time.Duration
	last     *Summary
}

// NewBroadcaster creates a new Broadcaster.
func NewBroadcaster(source Getter, events event.Publisher, interval time.Duration) *Broadcaster {
	return &Broadcaster{
		source:   source,
		events:   events,
		interval: interval,
	}
}

// Start begins the polling loop. It blocks until ctx is cancelled.
func (b *Broadcaster) Start(ctx context.Context) {
	slog.Info("summary broadcaster started", "interval", b.interval.String())
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("summary broadcaster stopped")
			return
		case <-ticker.C:
			b.Tick(ctx)
		}
	}
}

// Tick runs one poll. Failures are logged and the previous snapshot is kept.
func (b *Broadcaster) Tick(ctx context.Context) {
	current, err := b.source.Get(ctx)
	if err != nil {
		slog.Warn("summary broadcaster: failed to load summary", "error", err)
		return
	}

	if b.last != nil && *b.last == *current {
		return
	}
	b.last = current
	b.events.Publish(event.New(event.SummaryUpdated, current))
}
