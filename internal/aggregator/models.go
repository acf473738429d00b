package aggregator

import "github.com/preston-bernstein/nhl-team-insights/internal/domain/stats"

// Record is a win/loss/overtime-loss line. No percentage is derived.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	OT     int `json:"ot"`
}

// Side is one team of a match as displayed. Abbreviation is empty when the lookup failed.
type Side struct {
	TeamID       int    `json:"teamId"`
	Abbreviation string `json:"abbreviation"`
	Record       Record `json:"record"`
	Score        int    `json:"score"`
}

// MatchSummary describes the next or previous match of a team.
type MatchSummary struct {
	Date         string `json:"date"`
	RawDate      string `json:"rawDate"`
	Venue        string `json:"venue"`
	Away         Side   `json:"away"`
	Home         Side   `json:"home"`
	HighlightURL string `json:"highlightUrl,omitempty"`
}

// RosterPlayer is a roster row ready for display.
type RosterPlayer struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullName"`
	JerseyNumber string `json:"jerseyNumber"`
	Position     string `json:"position"`
	Link         string `json:"link"`
}

// TeamOverview is the merged team view. Degraded names the sections
// delivered without their data because a follow-up step failed.
type TeamOverview struct {
	TeamID           int            `json:"teamId"`
	Name             string         `json:"name"`
	Abbreviation     string         `json:"abbreviation"`
	Roster           []RosterPlayer `json:"roster"`
	HasNextMatch     bool           `json:"hasNextMatch"`
	NextMatch        *MatchSummary  `json:"nextMatch,omitempty"`
	HasPreviousMatch bool           `json:"hasPreviousMatch"`
	PreviousMatch    *MatchSummary  `json:"previousMatch,omitempty"`
	Degraded         []string       `json:"degraded,omitempty"`
}

// SeasonStats is the single-season aggregate shown on a profile.
type SeasonStats struct {
	Games   int `json:"games"`
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
	Points  int `json:"points"`
}

// PlayerProfile merges player detail with current-season totals.
// HasStats is false when the season has no aggregate row or it could not be fetched.
type PlayerProfile struct {
	ID            int         `json:"id"`
	FullName      string      `json:"fullName"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	PrimaryNumber string      `json:"primaryNumber"`
	BirthDate     string      `json:"birthDate"`
	Age           int         `json:"age"`
	Nationality   string      `json:"nationality"`
	Height        string      `json:"height"`
	Weight        int         `json:"weight"`
	ShootsCatches string      `json:"shootsCatches"`
	Position      string      `json:"position"`
	TeamID        int         `json:"teamId"`
	TeamName      string      `json:"teamName"`
	SeasonID      string      `json:"seasonId,omitempty"`
	HasStats      bool        `json:"hasStats"`
	Stats         SeasonStats `json:"stats"`
	Degraded      []string    `json:"degraded,omitempty"`
}

// MonthlyPoints is a player's per-month point totals for the current season.
type MonthlyPoints struct {
	SeasonID string                `json:"seasonId"`
	Buckets  []stats.MonthlyBucket `json:"buckets"`
	Labels   []string              `json:"labels"`
}
