package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nhl-team-insights/internal/domain/players"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/stats"
	"github.com/preston-bernstein/nhl-team-insights/internal/logging"
	"github.com/preston-bernstein/nhl-team-insights/internal/statsapi"
)

// Degraded section names of a PlayerProfile.
const (
	SectionSeason = "season"
	SectionStats  = "stats"
)

// PlayerProfile fetches the current season and the player detail concurrently,
// then the player's single-season totals once the season id is known.
// Only a failed player-detail fetch fails the build.
func (a *Aggregator) PlayerProfile(ctx context.Context, playerLink string) (PlayerProfile, error) {
	if err := validateLink(playerLink); err != nil {
		return PlayerProfile{}, err
	}
	ctx = logging.WithLogger(ctx, logging.FromContext(ctx, a.logger).With(slog.String(logging.FieldPlayerLink, playerLink)))
	playerURL := a.endpoints.PlayerURL(playerLink)

	var (
		season    stats.Season
		seasonErr error
		detail    players.Detail
		detailErr error
		g         errgroup.Group
	)
	g.Go(func() error {
		season, seasonErr = a.currentSeason(ctx)
		return nil
	})
	g.Go(func() error {
		detail, detailErr = fetchDecode(ctx, a, playerURL, statsapi.DecodePlayer)
		return nil
	})
	_ = g.Wait()

	if detailErr != nil {
		return PlayerProfile{}, fmt.Errorf("player profile %s: %w", playerLink, detailErr)
	}
	profile := profileFromDetail(detail)

	var degraded sections
	if seasonErr != nil {
		a.degrade(ctx, &degraded, SectionSeason, seasonErr)
		profile.Degraded = degraded
		return profile, nil
	}
	profile.SeasonID = season.SeasonID

	report, err := fetchDecode(ctx, a, a.endpoints.SingleSeasonStatsURL(playerURL, season.SeasonID), statsapi.DecodeStats)
	if err != nil {
		a.degrade(ctx, &degraded, SectionStats, err)
		profile.Degraded = degraded
		return profile, nil
	}
	if len(report.Splits) > 0 {
		stat := report.Splits[0].Stat
		profile.HasStats = true
		profile.Stats = SeasonStats{
			Games:   stat.Games,
			Goals:   stat.Goals,
			Assists: stat.Assists,
			Points:  stat.Points,
		}
	} else {
		a.debug(ctx, "no season totals for player", slog.String(logging.FieldSeasonID, season.SeasonID))
	}
	profile.Degraded = degraded
	return profile, nil
}

func profileFromDetail(d players.Detail) PlayerProfile {
	return PlayerProfile{
		ID:            d.ID,
		FullName:      d.FullName,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		PrimaryNumber: d.PrimaryNumber,
		BirthDate:     d.BirthDate,
		Age:           d.CurrentAge,
		Nationality:   d.Nationality,
		Height:        d.Height,
		Weight:        d.Weight,
		ShootsCatches: d.ShootsCatches,
		Position:      d.PrimaryPosition.String(),
		TeamID:        d.CurrentTeam.ID,
		TeamName:      d.CurrentTeam.Name,
	}
}

func (a *Aggregator) currentSeason(ctx context.Context) (stats.Season, error) {
	season, err := fetchDecode(ctx, a, a.endpoints.CurrentSeasonURL(), statsapi.DecodeSeason)
	if err != nil {
		return stats.Season{}, fmt.Errorf("current season: %w", err)
	}
	if season.SeasonID == "" {
		return stats.Season{}, fmt.Errorf("current season: empty season id: %w", statsapi.ErrMissingData)
	}
	return season, nil
}

func validateLink(playerLink string) error {
	if !strings.HasPrefix(playerLink, "/") || strings.ContainsAny(playerLink, "?# ") {
		return fmt.Errorf("%w: player link %q", ErrInvalidArgument, playerLink)
	}
	return nil
}
