package aggregator

import (
	"context"

	"github.com/preston-bernstein/nhl-team-insights/internal/dispatch"
)

// BuildTeamOverview runs TeamOverview on a worker and delivers it through d.
func (a *Aggregator) BuildTeamOverview(ctx context.Context, d *dispatch.Dispatcher, teamID int, callback func(TeamOverview, error)) (*dispatch.Ticket, error) {
	return dispatch.Submit(ctx, d, func(ctx context.Context) (TeamOverview, error) {
		return a.TeamOverview(ctx, teamID)
	}, callback)
}

// BuildPlayerProfile runs PlayerProfile on a worker and delivers it through d.
func (a *Aggregator) BuildPlayerProfile(ctx context.Context, d *dispatch.Dispatcher, playerLink string, callback func(PlayerProfile, error)) (*dispatch.Ticket, error) {
	return dispatch.Submit(ctx, d, func(ctx context.Context) (PlayerProfile, error) {
		return a.PlayerProfile(ctx, playerLink)
	}, callback)
}

// BuildMonthlyPoints runs MonthlyPoints on a worker and delivers it through d.
func (a *Aggregator) BuildMonthlyPoints(ctx context.Context, d *dispatch.Dispatcher, playerLink string, callback func(MonthlyPoints, error)) (*dispatch.Ticket, error) {
	return dispatch.Submit(ctx, d, func(ctx context.Context) (MonthlyPoints, error) {
		return a.MonthlyPoints(ctx, playerLink)
	}, callback)
}
