package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vogiaan1904/docqueue/pkg/logger"
)

// NewRouter mounts the queue API. metrics may be nil.
func NewRouter(h *HTTPHandler, l logger.Logger, metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logger.HTTPLogger(l))

	r.Get("/healthz", h.HealthCheck)
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	r.Route("/queue", func(r chi.Router) {
		r.Post("/register", h.RegisterUser)
		r.Post("/allow", h.AllowUsers)
		r.Get("/allowed", h.IsAllowed)
		r.Get("/token", h.GetToken)
		r.Post("/validate", h.ValidateToken)
		r.Get("/status", h.GetQueueStatus)
		r.Get("/status/stream", h.StreamQueueStatus)
		r.Get("/gate", h.Gate)
	})

	r.Get("/admin/processor", h.GetProcessorStatus)

	return r
}
