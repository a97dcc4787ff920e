package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/", h.showPage)
		r.Post("/relationships", h.createRelationship)
		r.Get("/version", h.getVersion)
	})

	router.Method("GET", "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
