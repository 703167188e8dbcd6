package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-study-sync/internal/metrics"
)

const domainRoute = "/api/users/{userID}/domains/{domainID}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/auth/refresh", h.refresh)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.checkUserAccess, withGZip)
		r.Put(domainRoute, h.upsertDomain)
		r.Get(domainRoute, h.getDomain)
	})

	router.Get("/api/version/", h.getServerVersion)
	router.Handle("/metrics", metrics.Handler())

	return router
}
