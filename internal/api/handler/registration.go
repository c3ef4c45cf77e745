package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/connecthq/registrar/internal/api/response"
	"github.com/connecthq/registrar/internal/registration"
)

// RegistrationService is the subset of registration.Service used by the handler.
type RegistrationService interface {
	Submit(ctx context.Context, in registration.SubmitInput) (*registration.Registration, error)
	List(ctx context.Context) ([]registration.Registration, error)
	Grouped(ctx context.Context) ([]registration.Group, int, error)
	UpdateTeam(ctx context.Context, memberID int64, teamID *int64) error
	Delete(ctx context.Context, memberID int64) error
}

type submitRequest struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Workplace   string     `json:"workplace"`
	ProjectIdea string     `json:"projectIdea"`
	TeamID      OptionalID `json:"teamId"`
	NewTeamName string     `json:"newTeamName"`
}

type updateTeamRequest struct {
	MemberID OptionalID `json:"memberId"`
	TeamID   OptionalID `json:"teamId"`
}

type createdRegistration struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type registrationRow struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Workplace   *string `json:"workplace"`
	ProjectIdea *string `json:"project_idea"`
	TeamID      *int64  `json:"team_id"`
	TeamName    *string `json:"team_name"`
	CreatedAt   string  `json:"created_at"`
}

type groupResponse struct {
	TeamID   *int64            `json:"teamId"`
	TeamName string            `json:"teamName"`
	Members  []registrationRow `json:"members"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toRegistrationRow(reg *registration.Registration) registrationRow {
	return registrationRow{
		ID:          reg.ID,
		Name:        reg.Name,
		Email:       reg.Email,
		Workplace:   reg.Workplace,
		ProjectIdea: reg.ProjectIdea,
		TeamID:      reg.TeamID,
		TeamName:    reg.TeamName,
		CreatedAt:   formatTime(reg.CreatedAt),
	}
}

func toRegistrationRows(regs []registration.Registration) []registrationRow {
	rows := make([]registrationRow, 0, len(regs))
	for i := range regs {
		rows = append(rows, toRegistrationRow(&regs[i]))
	}
	return rows
}

// RegistrationHandler handles the registration endpoints.
type RegistrationHandler struct {
	svc RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Submit handles POST /register.
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reg, err := h.svc.Submit(r.Context(), registration.SubmitInput{
		Name:        req.Name,
		Email:       req.Email,
		Workplace:   req.Workplace,
		ProjectIdea: req.ProjectIdea,
		TeamID:      req.TeamID.Ptr(),
		NewTeamName: req.NewTeamName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, response.Body{
		"registration": createdRegistration{
			ID:        reg.ID,
			Name:      reg.Name,
			Email:     reg.Email,
			CreatedAt: formatTime(reg.CreatedAt),
		},
	})
}

// List handles GET /registrations.
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	regs, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, response.Body{
		"registrations": toRegistrationRows(regs),
		"count":         len(regs),
	})
}

// Grouped handles GET /registrations/grouped.
func (h *RegistrationHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	groups, count, err := h.svc.Grouped(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	items := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		items = append(items, groupResponse{
			TeamID:   g.TeamID,
			TeamName: g.TeamName,
			Members:  toRegistrationRows(g.Members),
		})
	}

	response.Success(w, http.StatusOK, response.Body{
		"groups": items,
		"count":  count,
	})
}

// UpdateTeam handles PATCH /registrations.
func (h *RegistrationHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req updateTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.UpdateTeam(r.Context(), req.MemberID.Value, req.TeamID.Ptr()); err != nil {
		writeError(w, r, err)
		return
	}

	response.Message(w, "Member team updated successfully")
}

// Delete handles DELETE /registrations?id=.
func (h *RegistrationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r, "Member ID is required")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	response.Message(w, "Member deleted successfully")
}
