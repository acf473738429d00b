package aggregator

import (
	"time"

	"github.com/preston-bernstein/nhl-team-insights/internal/metrics"
	"github.com/preston-bernstein/nhl-team-insights/internal/testutil"
)

const (
	testBase     = "https://api.test/api/v1"
	testLinkBase = "https://api.test"
)

func testEndpoints() Endpoints {
	e := DefaultEndpoints()
	e.BaseURL = testBase
	e.LinkBaseURL = testLinkBase
	return e
}

func newTestAggregator(f Fetcher) (*Aggregator, *metrics.Recorder) {
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	return New(Config{
		Fetcher:         f,
		Endpoints:       testEndpoints(),
		Logger:          logger,
		Metrics:         rec,
		DisplayLocation: time.UTC,
	}), rec
}
