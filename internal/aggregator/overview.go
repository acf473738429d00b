package aggregator

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nhl-team-insights/internal/domain/games"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/players"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/teams"
	"github.com/preston-bernstein/nhl-team-insights/internal/logging"
	"github.com/preston-bernstein/nhl-team-insights/internal/roster"
	"github.com/preston-bernstein/nhl-team-insights/internal/statsapi"
	"github.com/preston-bernstein/nhl-team-insights/internal/timeutil"
)

// Degraded section names of a TeamOverview.
const (
	SectionRosterOrder      = "roster.order"
	SectionNextDate         = "next.date"
	SectionNextOpponent     = "next.opponent"
	SectionPreviousDate     = "previous.date"
	SectionPreviousOpponent = "previous.opponent"
	SectionPreviousMedia    = "previous.media"
)

type matchResult struct {
	summary  *MatchSummary
	degraded sections
}

// TeamOverview fetches a team with its roster and schedules, then resolves the
// opponent of the next and previous match and the previous match's highlight.
// The two halves run concurrently; inside the previous half the opponent and
// media lookups run concurrently too.
func (a *Aggregator) TeamOverview(ctx context.Context, teamID int) (TeamOverview, error) {
	if teamID <= 0 {
		return TeamOverview{}, fmt.Errorf("%w: team id %d", ErrInvalidArgument, teamID)
	}
	ctx = logging.WithLogger(ctx, logging.FromContext(ctx, a.logger).With(slog.Int(logging.FieldTeamID, teamID)))

	detail, err := fetchDecode(ctx, a, a.endpoints.TeamDetailURL(teamID), statsapi.DecodeTeam)
	if err != nil {
		return TeamOverview{}, fmt.Errorf("team overview %d: %w", teamID, err)
	}

	overview := TeamOverview{
		TeamID:       detail.Team.ID,
		Name:         detail.Team.Name,
		Abbreviation: detail.Team.Abbreviation,
	}
	if overview.TeamID == 0 {
		overview.TeamID = teamID
	}
	var degraded sections

	entries, err := roster.SortByJerseyNumber(detail.Roster)
	if err != nil {
		a.degrade(ctx, &degraded, SectionRosterOrder, err)
		entries = detail.Roster
	}
	overview.Roster = rosterPlayers(entries)

	self := detail.Team
	self.ID = overview.TeamID

	var next, previous matchResult
	var g errgroup.Group
	g.Go(func() error {
		next = a.nextMatch(ctx, self, detail.NextGameSchedule)
		return nil
	})
	g.Go(func() error {
		previous = a.previousMatch(ctx, self, detail.PreviousGameSchedule)
		return nil
	})
	_ = g.Wait()

	overview.HasNextMatch = next.summary != nil
	overview.NextMatch = next.summary
	overview.HasPreviousMatch = previous.summary != nil
	overview.PreviousMatch = previous.summary
	degraded = append(degraded, next.degraded...)
	overview.Degraded = append(degraded, previous.degraded...)
	return overview, nil
}

// RosterEntries fetches a team and returns its roster in the requested order.
// A non-numeric jersey number under jersey order is returned as *roster.JerseyNumberError.
func (a *Aggregator) RosterEntries(ctx context.Context, teamID int, order roster.Order) ([]RosterPlayer, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id %d", ErrInvalidArgument, teamID)
	}
	detail, err := fetchDecode(ctx, a, a.endpoints.TeamDetailURL(teamID), statsapi.DecodeTeam)
	if err != nil {
		return nil, fmt.Errorf("team roster %d: %w", teamID, err)
	}
	entries, err := roster.Sort(detail.Roster, order)
	if err != nil {
		return nil, err
	}
	return rosterPlayers(entries), nil
}

func rosterPlayers(entries []players.RosterEntry) []RosterPlayer {
	out := make([]RosterPlayer, 0, len(entries))
	for _, e := range entries {
		out = append(out, RosterPlayer{
			ID:           e.Person.ID,
			FullName:     e.Person.FullName,
			JerseyNumber: e.JerseyNumber,
			Position:     e.Position.String(),
			Link:         e.Person.Link,
		})
	}
	return out
}

func (a *Aggregator) nextMatch(ctx context.Context, self teams.Team, schedule games.Schedule) matchResult {
	game, rawDate, ok := schedule.First()
	if !ok {
		a.debug(ctx, "no next match scheduled")
		return matchResult{}
	}
	var res matchResult
	summary, opponent := a.summarize(ctx, &res.degraded, SectionNextDate, self, game, rawDate)

	abbr, err := a.opponentAbbreviation(ctx, opponent.TeamID)
	if err != nil {
		a.degrade(ctx, &res.degraded, SectionNextOpponent, err)
	} else {
		opponent.Abbreviation = abbr
	}
	res.summary = summary
	return res
}

func (a *Aggregator) previousMatch(ctx context.Context, self teams.Team, schedule games.Schedule) matchResult {
	game, rawDate, ok := schedule.First()
	if !ok {
		a.debug(ctx, "no previous match found")
		return matchResult{}
	}
	var res matchResult
	summary, opponent := a.summarize(ctx, &res.degraded, SectionPreviousDate, self, game, rawDate)

	var (
		abbr, highlight    string
		opponentErr, media error
		g                  errgroup.Group
	)
	g.Go(func() error {
		abbr, opponentErr = a.opponentAbbreviation(ctx, opponent.TeamID)
		return nil
	})
	g.Go(func() error {
		highlight, media = a.highlight(ctx, self.ID, rawDate)
		return nil
	})
	_ = g.Wait()

	if opponentErr != nil {
		a.degrade(ctx, &res.degraded, SectionPreviousOpponent, opponentErr)
	} else {
		opponent.Abbreviation = abbr
	}
	if media != nil {
		a.degrade(ctx, &res.degraded, SectionPreviousMedia, media)
	} else {
		summary.HighlightURL = highlight
	}
	res.summary = summary
	return res
}

// summarize builds the match summary and returns a pointer to the opponent side.
// The requesting team counts as home when neither side carries its id.
func (a *Aggregator) summarize(ctx context.Context, degraded *sections, dateSection string, self teams.Team, game games.Game, rawDate string) (*MatchSummary, *Side) {
	summary := &MatchSummary{
		RawDate: rawDate,
		Venue:   game.Venue.Name,
		Away:    side(game.Teams.Away),
		Home:    side(game.Teams.Home),
	}
	if t, err := timeutil.ParseAPIDate(rawDate); err != nil {
		a.degrade(ctx, degraded, dateSection, err)
	} else {
		summary.Date = timeutil.Format(t, timeutil.DisplayLayout, a.displayLoc)
	}

	if game.Teams.Away.Team.ID == self.ID {
		summary.Away.Abbreviation = self.Abbreviation
		return summary, &summary.Home
	}
	summary.Home.Abbreviation = self.Abbreviation
	return summary, &summary.Away
}

func side(t games.GameTeam) Side {
	return Side{
		TeamID: t.Team.ID,
		Record: Record{
			Wins:   t.LeagueRecord.Wins,
			Losses: t.LeagueRecord.Losses,
			OT:     t.LeagueRecord.OT,
		},
		Score: t.Score,
	}
}

func (a *Aggregator) opponentAbbreviation(ctx context.Context, teamID int) (string, error) {
	detail, err := fetchDecode(ctx, a, a.endpoints.TeamURL(teamID), statsapi.DecodeTeam)
	if err != nil {
		return "", fmt.Errorf("opponent %d: %w", teamID, err)
	}
	return detail.Team.Abbreviation, nil
}

func (a *Aggregator) highlight(ctx context.Context, teamID int, date string) (string, error) {
	schedule, err := fetchDecode(ctx, a, a.endpoints.DayScheduleURL(teamID, date), statsapi.DecodeSchedule)
	if err != nil {
		return "", fmt.Errorf("media schedule %s: %w", date, err)
	}
	return HighlightURL(schedule)
}
