package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/connecthq/registrar/internal/api/response"
	"github.com/connecthq/registrar/internal/team"
)

// TeamService is the subset of team.Service used by the handler.
type TeamService interface {
	Create(ctx context.Context, name string) (*team.Team, error)
	List(ctx context.Context, filter team.ListFilter) ([]team.Team, error)
	Delete(ctx context.Context, id int64) error
}

type createTeamRequest struct {
	Name string `json:"name"`
}

type teamResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CreatedAt   string `json:"created_at"`
	MemberCount int    `json:"member_count"`
}

func toTeamResponse(t *team.Team) teamResponse {
	return teamResponse{
		ID:          t.ID,
		Name:        t.Name,
		CreatedAt:   formatTime(t.CreatedAt),
		MemberCount: t.MemberCount,
	}
}

// TeamHandler handles team endpoints.
type TeamHandler struct {
	svc TeamService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(svc TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// Create handles POST /teams.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, response.Body{"team": toTeamResponse(t)})
}

// List handles GET /teams. ?available=true restricts it to teams with room.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	available, _ := strconv.ParseBool(r.URL.Query().Get("available"))
	h.list(w, r, team.ListFilter{AvailableOnly: available})
}

// ListAvailable handles GET /teams/available.
func (h *TeamHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, team.ListFilter{AvailableOnly: true})
}

func (h *TeamHandler) list(w http.ResponseWriter, r *http.Request, filter team.ListFilter) {
	teams, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]teamResponse, 0, len(teams))
	for i := range teams {
		items = append(items, toTeamResponse(&teams[i]))
	}

	response.Success(w, http.StatusOK, response.Body{"teams": items})
}

// Delete handles DELETE /teams?id=.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r, "Team ID is required")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	response.Message(w, "Team deleted successfully")
}
