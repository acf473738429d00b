package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/preston-bernstein/nhl-team-insights/internal/http/handlers"
	"github.com/preston-bernstein/nhl-team-insights/internal/http/middleware"
	"github.com/preston-bernstein/nhl-team-insights/internal/metrics"
)

// NewRouter registers HTTP routes on a chi router behind request logging and panic recovery.
func NewRouter(handler *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger, recorder))
	r.Use(chimiddleware.Recoverer)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/overview", handler.DefaultOverview)
	r.Route("/teams/{teamID}", func(r chi.Router) {
		r.Get("/overview", handler.TeamOverview)
		r.Get("/roster", handler.TeamRoster)
	})
	r.Route("/players", func(r chi.Router) {
		r.Get("/profile", handler.PlayerProfile)
		r.Get("/monthly-points", handler.MonthlyPoints)
	})
	return r
}
