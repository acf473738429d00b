package http

import (
	nethttp "net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/nhl-team-insights/internal/aggregator"
	"github.com/preston-bernstein/nhl-team-insights/internal/dispatch"
	"github.com/preston-bernstein/nhl-team-insights/internal/http/handlers"
	"github.com/preston-bernstein/nhl-team-insights/internal/metrics"
	"github.com/preston-bernstein/nhl-team-insights/internal/testutil"
)

func newTestRouter(t *testing.T, f aggregator.Fetcher) (nethttp.Handler, *metrics.Recorder) {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	e := aggregator.DefaultEndpoints()
	e.BaseURL = "https://api.test/api/v1"
	e.LinkBaseURL = "https://api.test"
	agg := aggregator.New(aggregator.Config{
		Fetcher:         f,
		Endpoints:       e,
		Logger:          logger,
		Metrics:         rec,
		DisplayLocation: time.UTC,
	})
	d := dispatch.New(logger)
	t.Cleanup(d.Close)
	return NewRouter(handlers.NewHandler(agg, d, 10, logger), logger, rec), rec
}

func TestRouterServesHealthWithRequestID(t *testing.T) {
	router, _ := newTestRouter(t, testutil.NewScriptedFetcher())

	rr := testutil.Serve(router, nethttp.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouterRegistersEveryRoute(t *testing.T) {
	router, _ := newTestRouter(t, testutil.NewScriptedFetcher())

	for _, path := range []string{"/ready", "/teams/abc/overview", "/teams/abc/roster", "/players/profile", "/players/monthly-points"} {
		rr := testutil.Serve(router, nethttp.MethodGet, path, nil)
		assert.NotEqual(t, nethttp.StatusNotFound, rr.Code, path)
	}
}

func TestRouterUnknownPathIsJSON404(t *testing.T) {
	router, _ := newTestRouter(t, testutil.NewScriptedFetcher())

	rr := testutil.Serve(router, nethttp.MethodGet, "/games/today", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestRouterUnexpectedFetchErrorIsInternal(t *testing.T) {
	f := testutil.NewScriptedFetcher()
	router, _ := newTestRouter(t, f)

	rr := testutil.Serve(router, nethttp.MethodGet, "/overview", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusInternalServerError)
	assert.Len(t, f.Calls(), 1)
}
