package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nhl-team-insights/internal/aggregator"
	"github.com/preston-bernstein/nhl-team-insights/internal/dispatch"
	"github.com/preston-bernstein/nhl-team-insights/internal/logging"
	"github.com/preston-bernstein/nhl-team-insights/internal/roster"
)

// Handler serves aggregated view models over HTTP. Every build goes through the
// dispatcher; a request that goes away before its build completes abandons it.
type Handler struct {
	agg           *aggregator.Aggregator
	dispatcher    *dispatch.Dispatcher
	defaultTeamID int
	logger        *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(agg *aggregator.Aggregator, dispatcher *dispatch.Dispatcher, defaultTeamID int, logger *slog.Logger) *Handler {
	return &Handler{
		agg:           agg,
		dispatcher:    dispatcher,
		defaultTeamID: defaultTeamID,
		logger:        logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.dispatcher == nil || h.dispatcher.Closed() {
		writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// DefaultOverview serves the overview of the configured team.
func (h *Handler) DefaultOverview(w http.ResponseWriter, r *http.Request) {
	h.serveOverview(w, r, h.defaultTeamID)
}

// TeamOverview serves GET /teams/{teamID}/overview.
func (h *Handler) TeamOverview(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}
	h.serveOverview(w, r, teamID)
}

func (h *Handler) serveOverview(w http.ResponseWriter, r *http.Request, teamID int) {
	overview, err := await(r, func(cb func(aggregator.TeamOverview, error)) (*dispatch.Ticket, error) {
		return h.agg.BuildTeamOverview(r.Context(), h.dispatcher, teamID, cb)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if len(overview.Degraded) > 0 {
		logging.Info(loggerFromContext(r, h.logger), "served degraded overview",
			slog.Int(logging.FieldTeamID, teamID),
			slog.Int(logging.FieldCount, len(overview.Degraded)),
		)
	}
	writeJSON(w, http.StatusOK, overview, h.logger)
}

// TeamRoster serves GET /teams/{teamID}/roster?sort=jersey|name|position.
func (h *Handler) TeamRoster(w http.ResponseWriter, r *http.Request) {
	teamID, ok := h.teamID(w, r)
	if !ok {
		return
	}
	order, err := roster.ParseOrder(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid sort (expected jersey, name or position)", h.logger)
		return
	}
	entries, err := await(r, func(cb func([]aggregator.RosterPlayer, error)) (*dispatch.Ticket, error) {
		return dispatch.Submit(r.Context(), h.dispatcher, func(ctx context.Context) ([]aggregator.RosterPlayer, error) {
			return h.agg.RosterEntries(ctx, teamID, order)
		}, cb)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"teamId": teamID, "sort": order, "roster": entries}, h.logger)
}

// PlayerProfile serves GET /players/profile?link=/api/v1/people/{id}.
func (h *Handler) PlayerProfile(w http.ResponseWriter, r *http.Request) {
	link, ok := h.playerLink(w, r)
	if !ok {
		return
	}
	profile, err := await(r, func(cb func(aggregator.PlayerProfile, error)) (*dispatch.Ticket, error) {
		return h.agg.BuildPlayerProfile(r.Context(), h.dispatcher, link, cb)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile, h.logger)
}

// MonthlyPoints serves GET /players/monthly-points?link=/api/v1/people/{id}.
func (h *Handler) MonthlyPoints(w http.ResponseWriter, r *http.Request) {
	link, ok := h.playerLink(w, r)
	if !ok {
		return
	}
	series, err := await(r, func(cb func(aggregator.MonthlyPoints, error)) (*dispatch.Ticket, error) {
		return h.agg.BuildMonthlyPoints(r.Context(), h.dispatcher, link, cb)
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, series, h.logger)
}

// NotFound and MethodNotAllowed keep router errors in the JSON error shape.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) teamID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return 0, false
	}
	return id, true
}

func (h *Handler) playerLink(w http.ResponseWriter, r *http.Request) (string, bool) {
	link := r.URL.Query().Get("link")
	if link == "" {
		writeError(w, r, http.StatusBadRequest, "missing player link", h.logger)
		return "", false
	}
	return link, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	logger := loggerFromContext(r, h.logger)
	if status >= http.StatusInternalServerError {
		logging.Error(logger, "request failed", err, slog.Int(logging.FieldStatusCode, status))
	} else {
		logging.Info(logger, "request rejected", slog.Int(logging.FieldStatusCode, status), "error", err)
	}
	writeError(w, r, status, msg, h.logger)
}
