package statsapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/nhl-team-insights/internal/logging"
	"github.com/preston-bernstein/nhl-team-insights/internal/metrics"
)

// Config controls how the client reaches the stats API.
type Config struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
	Clock      clockwork.Clock
}

// Client issues GET requests against the stats API and returns raw response text.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	clock      clockwork.Clock
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Client{
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		clock:      clock,
	}
}

// Fetch performs one GET for url and returns the body text.
// Network failures and non-2xx statuses are returned as *TransportError.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	start := c.clock.Now()
	body, err := c.do(ctx, url)
	elapsed := c.clock.Since(start)

	label := endpointLabel(url)
	c.metrics.RecordFetch(label, elapsed, err)

	logger := logging.FromContext(ctx, c.logger)
	if err != nil {
		logging.Warn(logger, "upstream fetch failed",
			slog.String(logging.FieldURL, url),
			slog.String(logging.FieldEndpoint, label),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			"error", err,
		)
		return "", err
	}
	logging.Debug(logger, "upstream fetch complete",
		slog.String(logging.FieldURL, url),
		slog.String(logging.FieldEndpoint, label),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return body, nil
}

func (c *Client) do(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return "", &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}
	return string(body), nil
}
