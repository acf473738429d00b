package aggregator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nhl-team-insights/internal/logging"
	"github.com/preston-bernstein/nhl-team-insights/internal/statsapi"
)

// MonthlyPoints resolves the current season, fetches the player's game log for
// it, and sums points per month oldest-first. Both fetches are required.
func (a *Aggregator) MonthlyPoints(ctx context.Context, playerLink string) (MonthlyPoints, error) {
	if err := validateLink(playerLink); err != nil {
		return MonthlyPoints{}, err
	}
	ctx = logging.WithLogger(ctx, logging.FromContext(ctx, a.logger).With(slog.String(logging.FieldPlayerLink, playerLink)))

	season, err := a.currentSeason(ctx)
	if err != nil {
		return MonthlyPoints{}, fmt.Errorf("monthly points %s: %w", playerLink, err)
	}
	url := a.endpoints.GameLogURL(a.endpoints.PlayerURL(playerLink), season.SeasonID)
	report, err := fetchDecode(ctx, a, url, statsapi.DecodeStats)
	if err != nil {
		return MonthlyPoints{}, fmt.Errorf("monthly points %s: %w", playerLink, err)
	}

	buckets, err := BucketByMonth(OldestFirst(report.Splits))
	if err != nil {
		return MonthlyPoints{}, fmt.Errorf("monthly points %s: %w", playerLink, err)
	}
	a.debug(ctx, "bucketed game log",
		slog.String(logging.FieldSeasonID, season.SeasonID),
		slog.Int(logging.FieldCount, len(report.Splits)),
	)
	return MonthlyPoints{
		SeasonID: season.SeasonID,
		Buckets:  buckets,
		Labels:   MonthLabels(buckets),
	}, nil
}
