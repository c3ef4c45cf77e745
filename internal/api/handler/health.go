package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/connecthq/registrar/internal/api/response"
)

// DBPinger checks database reachability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// ClientCounter reports connected live-feed clients.
type ClientCounter interface {
	Clients() int
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	db      DBPinger
	live    ClientCounter
	version string
}

// NewHealthHandler creates a new HealthHandler. live may be nil.
func NewHealthHandler(db DBPinger, live ClientCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, live: live, version: version}
}

type databaseStatus struct {
	Connected bool `json:"connected"`
}

// ServeHTTP reports "healthy", or "degraded" with a 503 when the database
// cannot be reached.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status, code := "healthy", http.StatusOK
	connected := true
	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("database ping failed", "error", err)
		status, code, connected = "degraded", http.StatusServiceUnavailable, false
	}

	body := response.Body{
		"status":   status,
		"version":  h.version,
		"database": databaseStatus{Connected: connected},
	}
	if h.live != nil {
		body["liveClients"] = h.live.Clients()
	}

	response.Success(w, code, body)
}
