package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/neuro-os/neuro-index/docs"
	"github.com/neuro-os/neuro-index/internal/api/handler"
	"github.com/neuro-os/neuro-index/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	entryHandler     *handler.EntryHandler
	dashboardHandler *handler.DashboardHandler
	cycleHandler     *handler.CycleHandler
	insightsHandler  *handler.InsightsHandler
}

func NewRouter(
	entryHandler *handler.EntryHandler,
	dashboardHandler *handler.DashboardHandler,
	cycleHandler *handler.CycleHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		entryHandler:     entryHandler,
		dashboardHandler: dashboardHandler,
		cycleHandler:     cycleHandler,
		insightsHandler:  insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/entries", func(r chi.Router) {
			r.Post("/", rt.entryHandler.Create)
			r.Get("/", rt.entryHandler.List)
			r.Get("/latest", rt.entryHandler.Latest)
			r.Get("/{date}", rt.entryHandler.GetByDate)
		})

		r.Get("/dashboard/summary", rt.dashboardHandler.Summary)
		r.Get("/insights", rt.insightsHandler.Get)

		r.Route("/cycle", func(r chi.Router) {
			r.Get("/", rt.cycleHandler.Get)
			r.Put("/", rt.cycleHandler.Update)
		})
	})

	return r
}
