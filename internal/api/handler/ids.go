package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/connecthq/registrar/internal/api/middleware"
	"github.com/connecthq/registrar/internal/api/response"
	"github.com/connecthq/registrar/internal/apperr"
)

// OptionalID is an integer id in a JSON body that may arrive as a number,
// a numeric string, an empty string or null. Empty and null leave it unset.
type OptionalID struct {
	Value int64
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *OptionalID) UnmarshalJSON(data []byte) error {
	*id = OptionalID{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("id %q is not an integer", raw)
	}
	id.Value, id.Set = n, true
	return nil
}

// Ptr returns the id, or nil when it was not provided.
func (id OptionalID) Ptr() *int64 {
	if !id.Set {
		return nil
	}
	v := id.Value
	return &v
}

// queryID parses the required ?id= query parameter, writing a 400 when it
// is missing or not an integer.
func queryID(w http.ResponseWriter, r *http.Request, message string) (int64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if raw == "" || err != nil || id <= 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", message,
			[]apperr.FieldError{{Field: "id", Message: "id must be a positive integer"}},
			middleware.GetRequestID(r.Context()))
		return 0, false
	}
	return id, true
}
