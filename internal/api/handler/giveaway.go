package handler

import (
	"context"
	"net/http"

	"github.com/connecthq/registrar/internal/api/response"
	"github.com/connecthq/registrar/internal/giveaway"
)

// WinnerSelector draws a giveaway winner.
type WinnerSelector interface {
	SelectWinner(ctx context.Context) (*giveaway.Winner, error)
}

// GiveawayHandler handles GET /select-winner.
type GiveawayHandler struct {
	selector WinnerSelector
}

// NewGiveawayHandler creates a new GiveawayHandler.
func NewGiveawayHandler(selector WinnerSelector) *GiveawayHandler {
	return &GiveawayHandler{selector: selector}
}

// ServeHTTP draws a winner among all registrants.
func (h *GiveawayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	winner, err := h.selector.SelectWinner(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Body{"winner": winner})
}
