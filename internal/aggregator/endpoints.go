package aggregator

import (
	"strconv"
	"strings"
)

const (
	DefaultBaseURL     = "https://statsapi.web.nhl.com/api/v1"
	DefaultLinkBaseURL = "https://statsapi.web.nhl.com"
)

// Endpoints holds the upstream base URLs and one template per query.
// Templates use {placeholder} tokens: {base}, {linkBase}, {teamId}, {date},
// {playerLink}, {playerUrl} and {seasonId}.
type Endpoints struct {
	BaseURL           string
	LinkBaseURL       string
	Team              string
	TeamDetail        string
	DaySchedule       string
	CurrentSeason     string
	Player            string
	SingleSeasonStats string
	GameLog           string
}

// DefaultEndpoints returns the stats API query layout.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		BaseURL:           DefaultBaseURL,
		LinkBaseURL:       DefaultLinkBaseURL,
		Team:              "{base}/teams/{teamId}",
		TeamDetail:        "{base}/teams/{teamId}?expand=team.roster,team.schedule.next,team.schedule.previous",
		DaySchedule:       "{base}/schedule?teamId={teamId}&startDate={date}&endDate={date}&expand=schedule.game.content.media.epg",
		CurrentSeason:     "{base}/seasons/current",
		Player:            "{linkBase}{playerLink}",
		SingleSeasonStats: "{playerUrl}/stats?stats=statsSingleSeason&season={seasonId}",
		GameLog:           "{playerUrl}/stats?stats=gameLog&season={seasonId}",
	}
}

// WithDefaults fills every empty field from DefaultEndpoints.
func (e Endpoints) WithDefaults() Endpoints {
	d := DefaultEndpoints()
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&e.BaseURL, d.BaseURL)
	fill(&e.LinkBaseURL, d.LinkBaseURL)
	fill(&e.Team, d.Team)
	fill(&e.TeamDetail, d.TeamDetail)
	fill(&e.DaySchedule, d.DaySchedule)
	fill(&e.CurrentSeason, d.CurrentSeason)
	fill(&e.Player, d.Player)
	fill(&e.SingleSeasonStats, d.SingleSeasonStats)
	fill(&e.GameLog, d.GameLog)
	e.BaseURL = strings.TrimRight(e.BaseURL, "/")
	e.LinkBaseURL = strings.TrimRight(e.LinkBaseURL, "/")
	return e
}

func (e Endpoints) render(tmpl string, pairs ...string) string {
	args := append([]string{"{base}", e.BaseURL, "{linkBase}", e.LinkBaseURL}, pairs...)
	return strings.NewReplacer(args...).Replace(tmpl)
}

// TeamURL is the plain team lookup used to resolve an opponent.
func (e Endpoints) TeamURL(teamID int) string {
	return e.render(e.Team, "{teamId}", strconv.Itoa(teamID))
}

// TeamDetailURL fetches a team with roster and next/previous schedules expanded.
func (e Endpoints) TeamDetailURL(teamID int) string {
	return e.render(e.TeamDetail, "{teamId}", strconv.Itoa(teamID))
}

// DayScheduleURL fetches one day of a team's schedule with media expanded.
func (e Endpoints) DayScheduleURL(teamID int, date string) string {
	return e.render(e.DaySchedule, "{teamId}", strconv.Itoa(teamID), "{date}", date)
}

func (e Endpoints) CurrentSeasonURL() string {
	return e.render(e.CurrentSeason)
}

// PlayerURL resolves a player link such as /api/v1/people/8479318.
func (e Endpoints) PlayerURL(playerLink string) string {
	return e.render(e.Player, "{playerLink}", playerLink)
}

func (e Endpoints) SingleSeasonStatsURL(playerURL, seasonID string) string {
	return e.render(e.SingleSeasonStats, "{playerUrl}", playerURL, "{seasonId}", seasonID)
}

func (e Endpoints) GameLogURL(playerURL, seasonID string) string {
	return e.render(e.GameLog, "{playerUrl}", playerURL, "{seasonId}", seasonID)
}
