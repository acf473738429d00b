// Package aggregator turns chains of stats API calls into display-ready view models.
//
// Each build owns its own state. Independent fetches run concurrently and are
// joined before the dependent step. A failed follow-up fetch degrades only the
// section it feeds; the primary fetch of a build is the only fatal one.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-team-insights/internal/logging"
	"github.com/preston-bernstein/nhl-team-insights/internal/metrics"
)

// Fetcher returns the raw body text for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ErrInvalidArgument reports a team id or player link that cannot be queried.
var ErrInvalidArgument = errors.New("aggregator: invalid argument")

// Config wires an Aggregator.
type Config struct {
	Fetcher   Fetcher
	Endpoints Endpoints
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	// DisplayLocation is the zone match dates are rendered in. Nil means the process local zone.
	DisplayLocation *time.Location
}

// Aggregator builds TeamOverview, PlayerProfile and MonthlyPoints view models.
type Aggregator struct {
	fetcher    Fetcher
	endpoints  Endpoints
	logger     *slog.Logger
	metrics    *metrics.Recorder
	displayLoc *time.Location
}

func New(cfg Config) *Aggregator {
	return &Aggregator{
		fetcher:    cfg.Fetcher,
		endpoints:  cfg.Endpoints.WithDefaults(),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		displayLoc: cfg.DisplayLocation,
	}
}

// Endpoints returns the resolved endpoint layout.
func (a *Aggregator) Endpoints() Endpoints {
	return a.endpoints
}

// fetchDecode performs one fetch and decodes the body with decode.
func fetchDecode[T any](ctx context.Context, a *Aggregator, url string, decode func(string) (T, error)) (T, error) {
	var zero T
	text, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return zero, err
	}
	v, err := decode(text)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", url, err)
	}
	return v, nil
}

// sections collects the names of degraded view-model sections for one build half.
type sections []string

func (a *Aggregator) degrade(ctx context.Context, list *sections, section string, err error) {
	*list = append(*list, section)
	a.metrics.RecordDegraded(section)
	logging.Warn(logging.FromContext(ctx, a.logger), "section degraded",
		slog.String(logging.FieldSection, section),
		"error", err,
	)
}

func (a *Aggregator) debug(ctx context.Context, msg string, args ...any) {
	logging.Debug(logging.FromContext(ctx, a.logger), msg, args...)
}
