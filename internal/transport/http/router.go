// Package httptransport is the thin HTTP layer over the diagnostic
// runner. Handlers delegate to the runner and the flash store; no
// advisory logic lives here.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sitedoctor/internal/doctor"
	"sitedoctor/internal/flash"
	"sitedoctor/internal/identity"
	"sitedoctor/pkg/platform/middleware/metadata"
)

// Handler wires the admin endpoints to the diagnostic runner.
type Handler struct {
	runner *doctor.Runner
	flash  flash.Store
	logger *slog.Logger
}

// NewHandler constructs the transport handler with its dependencies.
func NewHandler(runner *doctor.Runner, store flash.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{runner: runner, flash: store, logger: logger}
}

// NewRouter wires the middleware chain and all endpoints. Every admin
// page passes through the doctor middleware under its route name; the
// runner's allow-list decides whether a pass actually executes.
func NewRouter(h *Handler, validator *identity.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Recover(h.logger))
	r.Use(metadata.ClientMetadata)
	r.Use(Session)
	r.Use(Auth(validator, h.logger))

	r.Route("/admin", func(r chi.Router) {
		r.With(h.doctor("dashboard")).Get("/dashboard", h.handlePage("dashboard"))
		r.With(h.doctor("login")).Get("/login", h.handlePage("login"))
		r.With(h.doctor("userfirst")).Get("/userfirst", h.handlePage("userfirst"))
		r.With(h.doctor("content")).Get("/content", h.handlePage("content"))
	})

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// doctor runs a diagnostic pass for the named route before the page
// handler. Notices reach the page through the flash store, not through
// this middleware's return path.
func (h *Handler) doctor(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.runner.Run(r.Context(), route, requestInfo(r))
			next.ServeHTTP(w, r)
		})
	}
}
