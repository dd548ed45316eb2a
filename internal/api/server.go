// Package api exposes the plan engine and scenario store over HTTP. The
// router is chi with the usual middleware stack; CORS is open to local
// frontend dev servers since the dashboard runs in a browser.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		// Ad-hoc calculation: params in, full results out.
		r.Post("/plan", h.CalculatePlan)

		// Named scenarios persisted in the store.
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/", h.SaveScenario)
			r.Get("/{name}", h.GetScenario)
			r.Delete("/{name}", h.DeleteScenario)
			r.Get("/{name}/plan", h.PlanScenario)
		})
	})

	return r
}
