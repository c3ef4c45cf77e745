package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/connecthq/registrar/internal/api/middleware"
	"github.com/connecthq/registrar/internal/api/response"
	"github.com/connecthq/registrar/internal/apperr"
)

const maxBodyBytes = 1 << 20

var statusByKind = map[apperr.Kind]int{
	apperr.KindValidation:  http.StatusBadRequest,
	apperr.KindConflict:    http.StatusConflict,
	apperr.KindNotFound:    http.StatusNotFound,
	apperr.KindPersistence: http.StatusInternalServerError,
}

// writeError translates a service error into its JSON error response.
// Errors outside the apperr taxonomy are reported as 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		middleware.Logger(r.Context()).Error("unhandled error", "path", r.URL.Path, "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", requestID)
		return
	}

	status, ok := statusByKind[appErr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		middleware.Logger(r.Context()).Error(appErr.Message, "path", r.URL.Path, "error", appErr.Err)
	}

	if len(appErr.Fields) > 0 {
		response.ErrWithDetails(w, status, appErr.Code, appErr.Message, appErr.Fields, requestID)
		return
	}
	response.Err(w, status, appErr.Code, appErr.Message, requestID)
}

// decodeJSON reads a JSON request body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", middleware.GetRequestID(r.Context()))
		return false
	}
	return true
}
