package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/connecthq/registrar/internal/api/handler"
	"github.com/connecthq/registrar/internal/api/middleware"
)

// LiveFeed is the WebSocket endpoint that also reports its client count.
type LiveFeed interface {
	http.Handler
	handler.ClientCounter
}

// RouterDeps holds all dependencies needed by the router. Optional
// dependencies left nil disable their routes.
type RouterDeps struct {
	DBPinger       handler.DBPinger
	Version        string
	Registrations  handler.RegistrationService
	Teams          handler.TeamService
	Giveaway       handler.WinnerSelector
	Summary        handler.SummaryService
	Countdown      *handler.CountdownHandler
	Live           LiveFeed
	OpenAPISpec    []byte
	AllowedOrigins []string
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(corsHandler(deps.AllowedOrigins))

	var clients handler.ClientCounter
	if deps.Live != nil {
		clients = deps.Live
		r.Get("/live", deps.Live.ServeHTTP)
	}

	healthHandler := handler.NewHealthHandler(deps.DBPinger, clients, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler, err := handler.NewOpenAPIHandler(deps.OpenAPISpec, deps.Version)
		if err != nil {
			slog.Error("openapi document disabled", "error", err)
		} else {
			r.Get("/openapi.json", openapiHandler.ServeHTTP)
			r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/openapi.json")))
		}
	}

	if deps.Registrations != nil {
		regHandler := handler.NewRegistrationHandler(deps.Registrations)
		r.Post("/register", regHandler.Submit)
		r.Route("/registrations", func(r chi.Router) {
			r.Get("/", regHandler.List)
			r.Patch("/", regHandler.UpdateTeam)
			r.Delete("/", regHandler.Delete)
			r.Get("/grouped", regHandler.Grouped)
		})
	}

	if deps.Teams != nil {
		teamHandler := handler.NewTeamHandler(deps.Teams)
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.List)
			r.Post("/", teamHandler.Create)
			r.Delete("/", teamHandler.Delete)
			r.Get("/available", teamHandler.ListAvailable)
		})
	}

	if deps.Giveaway != nil {
		r.Get("/select-winner", handler.NewGiveawayHandler(deps.Giveaway).ServeHTTP)
	}

	if deps.Summary != nil {
		r.Get("/summary", handler.NewSummaryHandler(deps.Summary).ServeHTTP)
	}

	if deps.Countdown != nil {
		r.Get("/countdown", deps.Countdown.ServeHTTP)
	}

	return r
}

// corsHandler allows any origin when none are configured.
func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         300,
	})
}
