package testutil

import (
	"fmt"
	"strings"
)

// TeamJSON is a teams envelope holding one team without expansions.
func TeamJSON(id int, name, abbreviation string) string {
	return fmt.Sprintf(`{"teams":[{"id":%d,"name":%q,"abbreviation":%q,"link":"/api/v1/teams/%d"}]}`, id, name, abbreviation, id)
}

// GameJSON is one game between away and home with records and scores.
func GameJSON(awayID, homeID int, venue string) string {
	return fmt.Sprintf(`{
  "gamePk": 2020020001,
  "teams": {
    "away": {"leagueRecord": {"wins": 10, "losses": 5, "ot": 2}, "score": 2, "team": {"id": %d}},
    "home": {"leagueRecord": {"wins": 12, "losses": 3, "ot": 1}, "score": 4, "team": {"id": %d}}
  },
  "venue": {"name": %q}
}`, awayID, homeID, venue)
}

// ScheduleJSON wraps one game on date into a schedule object. An empty game means no dates.
func ScheduleJSON(date, game string) string {
	if game == "" {
		return `{"dates":[]}`
	}
	return fmt.Sprintf(`{"dates":[{"date":%q,"games":[%s]}]}`, date, game)
}

// TeamDetailJSON is a teams envelope with roster and next/previous schedule objects.
// Empty arguments become an empty roster or a schedule with no dates.
func TeamDetailJSON(id int, name, abbreviation, roster, next, previous string) string {
	if roster == "" {
		roster = "[]"
	}
	if next == "" {
		next = ScheduleJSON("", "")
	}
	if previous == "" {
		previous = ScheduleJSON("", "")
	}
	return fmt.Sprintf(`{"teams":[{"id":%d,"name":%q,"abbreviation":%q,"roster":{"roster":%s},"nextGameSchedule":%s,"previousGameSchedule":%s}]}`,
		id, name, abbreviation, roster, next, previous)
}

// RosterEntryJSON is one roster row.
func RosterEntryJSON(id int, fullName, jersey, position string) string {
	return fmt.Sprintf(`{"person":{"id":%d,"fullName":%q,"link":"/api/v1/people/%d"},"jerseyNumber":%q,"position":{"code":%q,"abbreviation":%q}}`,
		id, fullName, id, jersey, position, position)
}

// RosterJSON joins roster rows into a JSON array.
func RosterJSON(entries ...string) string {
	return "[" + strings.Join(entries, ",") + "]"
}

// MediaScheduleJSON is a day schedule whose single game has epgCount epg entries;
// the entry at index 2 carries one item with three playbacks, the last pointing at url.
func MediaScheduleJSON(date string, epgCount int, url string) string {
	epg := make([]string, 0, epgCount)
	for i := 0; i < epgCount; i++ {
		if i == 2 {
			epg = append(epg, fmt.Sprintf(`{"title":"Extended Highlights","items":[{"playbacks":[{"url":"low"},{"url":"mid"},{"url":%q}]}]}`, url))
			continue
		}
		epg = append(epg, fmt.Sprintf(`{"title":"epg-%d","items":[]}`, i))
	}
	game := fmt.Sprintf(`{"gamePk":1,"content":{"media":{"epg":[%s]}}}`, strings.Join(epg, ","))
	return ScheduleJSON(date, game)
}

// SeasonJSON is a seasons envelope with one season.
func SeasonJSON(seasonID string) string {
	return fmt.Sprintf(`{"seasons":[{"seasonId":%q,"numberOfGames":56}]}`, seasonID)
}

// PlayerJSON is a people envelope with one player.
func PlayerJSON(id int, fullName string, teamID int) string {
	return fmt.Sprintf(`{"people":[{"id":%d,"fullName":%q,"firstName":"First","lastName":"Last","primaryNumber":"34","currentAge":23,"nationality":"USA","height":"6' 3\"","weight":220,"shootsCatches":"L","currentTeam":{"id":%d,"name":"Team %d"},"primaryPosition":{"code":"C","abbreviation":"C"}}]}`,
		id, fullName, teamID, teamID)
}

// Game is a game-log row for StatsJSON.
type Game struct {
	Date   string
	Points int
}

// StatsJSON is a stats envelope whose report holds one split per game, in the order given.
func StatsJSON(displayName string, log ...Game) string {
	splits := make([]string, 0, len(log))
	for _, g := range log {
		splits = append(splits, fmt.Sprintf(`{"season":"20202021","date":%q,"stat":{"games":1,"goals":%d,"assists":0,"points":%d}}`, g.Date, g.Points, g.Points))
	}
	return fmt.Sprintf(`{"stats":[{"type":{"displayName":%q},"splits":[%s]}]}`, displayName, strings.Join(splits, ","))
}

// SeasonTotalsJSON is a single-season stats envelope with one aggregate row.
func SeasonTotalsJSON(games, goals, assists, points int) string {
	return fmt.Sprintf(`{"stats":[{"type":{"displayName":"statsSingleSeason"},"splits":[{"season":"20202021","stat":{"games":%d,"goals":%d,"assists":%d,"points":%d}}]}]}`,
		games, goals, assists, points)
}
