package games

import "github.com/preston-bernstein/nhl-team-insights/internal/domain/teams"

// Schedule is an ordered list of game days.
// Zero dates means there is no such game; callers branch on HasGames instead of indexing.
type Schedule struct {
	Dates []ScheduleDate `json:"dates"`
}

// HasGames reports whether the schedule holds at least one date with at least one game.
func (s Schedule) HasGames() bool {
	return len(s.Dates) > 0 && len(s.Dates[0].Games) > 0
}

// First returns the first game of the first date along with that date's raw string.
func (s Schedule) First() (Game, string, bool) {
	if !s.HasGames() {
		return Game{}, "", false
	}
	return s.Dates[0].Games[0], s.Dates[0].Date, true
}

// ScheduleDate groups the games played on one calendar date (YYYY-MM-DD).
type ScheduleDate struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// LeagueRecord is a team's win/loss/overtime record going into a game.
type LeagueRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	OT     int `json:"ot"`
}

// GameTeam is one side of a game.
type GameTeam struct {
	Team         teams.Team   `json:"team"`
	LeagueRecord LeagueRecord `json:"leagueRecord"`
	Score        int          `json:"score"`
}

// Sides holds the away and home entries of a game.
type Sides struct {
	Away GameTeam `json:"away"`
	Home GameTeam `json:"home"`
}

// Venue is where a game is played.
type Venue struct {
	Name string `json:"name"`
}

// Playback is one encoding of a media item.
type Playback struct {
	Name   string `json:"name"`
	Width  string `json:"width"`
	Height string `json:"height"`
	URL    string `json:"url"`
}

// MediaItem is a single video with its playbacks.
type MediaItem struct {
	Title     string     `json:"title"`
	Blurb     string     `json:"blurb"`
	Playbacks []Playback `json:"playbacks"`
}

// Epg is a labeled group of media items attached to a game.
type Epg struct {
	Title string      `json:"title"`
	Items []MediaItem `json:"items"`
}

// Media holds the program guide entries of a game.
type Media struct {
	Epg []Epg `json:"epg"`
}

// Content is the optional media payload of a game, present when expanded.
type Content struct {
	Link  string `json:"link"`
	Media Media  `json:"media"`
}

// Game is a single scheduled or played game.
type Game struct {
	GamePK   int     `json:"gamePk"`
	Link     string  `json:"link"`
	GameDate string  `json:"gameDate"`
	Teams    Sides   `json:"teams"`
	Venue    Venue   `json:"venue"`
	Content  Content `json:"content"`
}
