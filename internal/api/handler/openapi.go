package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"sigs.k8s.io/yaml"

	"github.com/connecthq/registrar/internal/api/middleware"
)

// OpenAPIHandler serves the embedded API description as JSON, stamped with
// the running build version.
type OpenAPIHandler struct {
	doc []byte
}

// NewOpenAPIHandler converts the YAML document once and sets info.version
// to version when it is not empty.
func NewOpenAPIHandler(yamlDoc []byte, version string) (*OpenAPIHandler, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(yamlDoc, &doc); err != nil {
		return nil, fmt.Errorf("parsing openapi document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("openapi document is empty")
	}

	if version != "" {
		info, _ := doc["info"].(map[string]any)
		if info == nil {
			info = map[string]any{}
			doc["info"] = info
		}
		info["version"] = version
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding openapi document: %w", err)
	}
	return &OpenAPIHandler{doc: out}, nil
}

func (h *OpenAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := w.Write(h.doc); err != nil {
		middleware.Logger(r.Context()).Warn("writing openapi document", "error", err)
	}
}
