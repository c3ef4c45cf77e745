package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/connecthq/registrar/internal/api/response"
	"github.com/connecthq/registrar/internal/countdown"
	"github.com/connecthq/registrar/internal/summary"
)

// SummaryService computes the dashboard headcounts.
type SummaryService interface {
	Get(ctx context.Context) (*summary.Summary, error)
}

// SummaryHandler handles GET /summary.
type SummaryHandler struct {
	svc SummaryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

func (h *SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, response.Body{"summary": s})
}

// CountdownHandler handles GET /countdown.
type CountdownHandler struct {
	clock *countdown.Clock
	now   func() time.Time
}

// NewCountdownHandler creates a CountdownHandler. A nil now uses time.Now.
func NewCountdownHandler(clock *countdown.Clock, now func() time.Time) *CountdownHandler {
	if now == nil {
		now = time.Now
	}
	return &CountdownHandler{clock: clock, now: now}
}

func (h *CountdownHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, response.Body{"countdown": h.clock.Remaining(h.now())})
}
