package domain

import (
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/games"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/players"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/teams"
)

// TeamDetail is a team fetched with its roster and next/previous schedules expanded.
type TeamDetail struct {
	Team                 teams.Team            `json:"team"`
	Roster               []players.RosterEntry `json:"roster"`
	NextGameSchedule     games.Schedule        `json:"nextGameSchedule"`
	PreviousGameSchedule games.Schedule        `json:"previousGameSchedule"`
}
