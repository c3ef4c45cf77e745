package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Body is a JSON object response. Success adds "success": true to it.
type Body map[string]any

// Error is the JSON body of every failed request.
type Error struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Success writes a successful JSON response.
func Success(w http.ResponseWriter, status int, body Body) {
	if body == nil {
		body = Body{}
	}
	body["success"] = true
	JSON(w, status, body)
}

// Message writes a successful response carrying only a human-readable message.
func Message(w http.ResponseWriter, message string) {
	Success(w, http.StatusOK, Body{"message": message})
}

// Err writes an error JSON response.
func Err(w http.ResponseWriter, status int, code string, message string, requestID string) {
	JSON(w, status, Error{
		Error:     message,
		Code:      code,
		RequestID: requestID,
	})
}

// ErrWithDetails writes an error JSON response with additional details.
func ErrWithDetails(w http.ResponseWriter, status int, code string, message string, details any, requestID string) {
	JSON(w, status, Error{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: requestID,
	})
}
