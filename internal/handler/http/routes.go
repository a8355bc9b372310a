package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.version)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Post("/api/sync", h.syncRound)
		r.Get("/api/sync/status", h.syncStatus)
	})

	return router
}
