package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/preston-bernstein/nhl-team-insights/internal/aggregator"
	"github.com/preston-bernstein/nhl-team-insights/internal/dispatch"
	"github.com/preston-bernstein/nhl-team-insights/internal/roster"
	"github.com/preston-bernstein/nhl-team-insights/internal/statsapi"
	"github.com/preston-bernstein/nhl-team-insights/internal/timeutil"
)

// statusFor maps a build error to an HTTP status and a client-facing message.
func statusFor(err error) (int, string) {
	var (
		jerseyErr *roster.JerseyNumberError
		parseErr  *timeutil.ParseError
	)
	switch {
	case errors.Is(err, aggregator.ErrInvalidArgument), errors.Is(err, roster.ErrUnknownOrder):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &jerseyErr), errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, statsapi.ErrMissingData):
		return http.StatusNotFound, "not found"
	case errors.Is(err, dispatch.ErrClosed), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "request abandoned"
	}
	if tErr, ok := statsapi.AsTransportError(err); ok {
		if tErr.StatusCode == http.StatusNotFound {
			return http.StatusNotFound, "not found"
		}
		return http.StatusBadGateway, "upstream unavailable"
	}
	if statsapi.IsUpstreamFailure(err) {
		return http.StatusBadGateway, "upstream returned an unexpected response"
	}
	return http.StatusInternalServerError, "internal error"
}
