package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sevigo/quality-warden/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(
	nominations handler.NominationService,
	users handler.UserResolver,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(handler.Authenticate(users, logger))

		h := handler.NewNominationHandler(nominations, logger)
		r.Route("/quality-nominations", func(r chi.Router) {
			r.Post("/", h.Create)
			r.Get("/", h.ListAll)
			r.Get("/assigned", h.ListAssigned)
			r.Get("/mine", h.ListMine)
			r.Get("/{id}", h.Details)
		})
	})

	return r
}
