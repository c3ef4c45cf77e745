package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	apidoc "github.com/connecthq/registrar/api"
	"github.com/connecthq/registrar/internal/api"
	"github.com/connecthq/registrar/internal/api/handler"
	"github.com/connecthq/registrar/internal/countdown"
	"github.com/connecthq/registrar/internal/giveaway"
	"github.com/connecthq/registrar/internal/registration"
	"github.com/connecthq/registrar/internal/summary"
	"github.com/connecthq/registrar/internal/team"
)

// openAPIDoc is the minimal structure needed to extract paths from the document.
type openAPIDoc struct {
	Paths map[string]map[string]any `json:"paths"`
}

// --- Noop implementations to satisfy RouterDeps interfaces ---

type noopPinger struct{}

func (noopPinger) Ping(context.Context) error { return nil }

type noopRegistrations struct{}

func (noopRegistrations) Submit(context.Context, registration.SubmitInput) (*registration.Registration, error) {
	return &registration.Registration{}, nil
}
func (noopRegistrations) List(context.Context) ([]registration.Registration, error) { return nil, nil }
func (noopRegistrations) Grouped(context.Context) ([]registration.Group, int, error) {
	return nil, 0, nil
}
func (noopRegistrations) UpdateTeam(context.Context, int64, *int64) error { return nil }
func (noopRegistrations) Delete(context.Context, int64) error             { return nil }

type noopTeams struct{}

func (noopTeams) Create(_ context.Context, name string) (*team.Team, error) {
	return &team.Team{Name: name}, nil
}
func (noopTeams) List(context.Context, team.ListFilter) ([]team.Team, error) { return nil, nil }
func (noopTeams) Delete(context.Context, int64) error                        { return nil }

type noopGiveaway struct{}

func (noopGiveaway) SelectWinner(context.Context) (*giveaway.Winner, error) {
	return nil, giveaway.ErrNoRegistrations
}

type noopSummary struct{}

func (noopSummary) Get(context.Context) (*summary.Summary, error) { return &summary.Summary{}, nil }

type noopLive struct{}

func (noopLive) ServeHTTP(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }
func (noopLive) Clients() int                                     { return 0 }

func fullDeps(t *testing.T) api.RouterDeps {
	t.Helper()
	clock, err := countdown.Parse("22:30", "UTC")
	require.NoError(t, err)

	return api.RouterDeps{
		DBPinger:      noopPinger{},
		Version:       "test",
		Registrations: noopRegistrations{},
		Teams:         noopTeams{},
		Giveaway:      noopGiveaway{},
		Summary:       noopSummary{},
		Countdown:     handler.NewCountdownHandler(clock, time.Now),
		Live:          noopLive{},
		OpenAPISpec:   apidoc.OpenAPISpec,
	}
}

func TestOpenAPISpec_RoutesCoverAllPaths(t *testing.T) {
	t.Parallel()

	docJSON, err := yaml.YAMLToJSON(apidoc.OpenAPISpec)
	require.NoError(t, err, "embedded document must convert to JSON")

	var doc openAPIDoc
	require.NoError(t, json.Unmarshal(docJSON, &doc))

	docRoutes := extractDocRoutes(doc)
	require.NotEmpty(t, docRoutes)

	chiRoutes := extractChiRoutes(t, api.NewRouter(fullDeps(t)))
	require.NotEmpty(t, chiRoutes)

	for _, sr := range docRoutes {
		t.Run(fmt.Sprintf("documented_%s_%s_has_Chi_route", sr.method, sr.path), func(t *testing.T) {
			assert.Contains(t, chiRoutes, sr, "documented route %s %s not found in Chi router", sr.method, sr.path)
		})
	}

	for _, cr := range chiRoutes {
		t.Run(fmt.Sprintf("Chi_%s_%s_is_documented", cr.method, cr.path), func(t *testing.T) {
			assert.Contains(t, docRoutes, cr, "Chi route %s %s not documented", cr.method, cr.path)
		})
	}
}

func TestRouter_MiddlewareChain(t *testing.T) {
	router := api.NewRouter(fullDeps(t))

	req := httptest.NewRequest(http.MethodGet, "/select-winner", nil)
	req.Header.Set("Origin", "https://register.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, w.Header().Get("X-Request-ID"), body["requestId"])
}

func TestRouter_CORSRestricted(t *testing.T) {
	deps := fullDeps(t)
	deps.AllowedOrigins = []string{"https://register.example.com"}
	router := api.NewRouter(deps)

	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_OptionalRoutesDisabled(t *testing.T) {
	router := api.NewRouter(api.RouterDeps{DBPinger: noopPinger{}, Version: "test"})

	for _, path := range []string{"/register", "/teams", "/select-winner", "/summary", "/countdown", "/live", "/openapi.json"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Contains(t, []int{http.StatusNotFound, http.StatusMethodNotAllowed}, w.Code, path)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

type route struct {
	method string
	path   string
}

func extractDocRoutes(doc openAPIDoc) []route {
	var routes []route
	for path, methods := range doc.Paths {
		for method := range methods {
			routes = append(routes, route{method: strings.ToUpper(method), path: path})
		}
	}
	sortRoutes(routes)
	return routes
}

func extractChiRoutes(t *testing.T, r *chi.Mux) []route {
	t.Helper()
	var routes []route
	walkFunc := func(method, routePath string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		// Chi subroutes produce trailing slashes (/teams/), OpenAPI does not.
		normalized := strings.TrimRight(routePath, "/")
		if normalized == "" {
			normalized = "/"
		}
		routes = append(routes, route{method: method, path: normalized})
		return nil
	}
	require.NoError(t, chi.Walk(r, walkFunc))
	sortRoutes(routes)
	return routes
}

func sortRoutes(routes []route) {
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].path == routes[j].path {
			return routes[i].method < routes[j].method
		}
		return routes[i].path < routes[j].path
	})
}

func TestRouter_OpenAPIDocumentCarriesVersion(t *testing.T) {
	router := api.NewRouter(fullDeps(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		Info struct {
			Version string `json:"version"`
		} `json:"info"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "test", doc.Info.Version)
}
