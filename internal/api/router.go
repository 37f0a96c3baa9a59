package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/dynamicweb/dynamicweb/internal/api/handler"
	"github.com/dynamicweb/dynamicweb/internal/api/middleware"
	"github.com/dynamicweb/dynamicweb/internal/history"
	"github.com/dynamicweb/dynamicweb/internal/session"
)

// Architect is the generation backend used by the pages and the API.
// *architect.Service satisfies it.
type Architect interface {
	session.Generator
	handler.Chatter
}

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Version     string
	Architect   Architect
	Sessions    *session.Store
	History     history.Repository
	DBPinger    handler.DBPinger
	Limiter     *rate.Limiter
	OpenAPISpec []byte
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Architect.ProviderName(), deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec, handler.OpenAPIOptions{
			Version: deps.Version,
			History: deps.History != nil,
		})
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	var rec session.Recorder
	if deps.History != nil {
		rec = deps.History
	}

	pageHandler := handler.NewPageHandler(deps.Architect, rec)
	blueprintHandler := handler.NewBlueprintHandler(deps.Architect, rec)
	chatHandler := handler.NewChatHandler(deps.Architect)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(deps.Sessions))
		r.Get("/", pageHandler.Index)

		r.Group(func(r chi.Router) {
			if deps.Limiter != nil {
				r.Use(middleware.RateLimit(deps.Limiter))
			}
			r.Post("/architect", pageHandler.Architect)
			r.Post("/api/v1/blueprints", blueprintHandler.Create)
			r.Post("/api/v1/chat", chatHandler.Create)
		})
	})

	if deps.History != nil {
		generationHandler := handler.NewGenerationHandler(deps.History)
		r.Route("/api/v1/generations", func(r chi.Router) {
			r.Get("/", generationHandler.List)
			r.Get("/{id}", generationHandler.GetByID)
		})
	}

	return r
}
