package stats

// Season identifies a season, e.g. "20202021", with its bounds.
type Season struct {
	SeasonID               string `json:"seasonId"`
	RegularSeasonStartDate string `json:"regularSeasonStartDate"`
	RegularSeasonEndDate   string `json:"regularSeasonEndDate"`
	SeasonEndDate          string `json:"seasonEndDate"`
	NumberOfGames          int    `json:"numberOfGames"`
}

// Stat is one bundle of counting stats, for a game or a whole season.
type Stat struct {
	Games            int    `json:"games"`
	Goals            int    `json:"goals"`
	Assists          int    `json:"assists"`
	Points           int    `json:"points"`
	Shots            int    `json:"shots"`
	Hits             int    `json:"hits"`
	PIM              int    `json:"pim"`
	PlusMinus        int    `json:"plusMinus"`
	PowerPlayGoals   int    `json:"powerPlayGoals"`
	PowerPlayPoints  int    `json:"powerPlayPoints"`
	Blocked          int    `json:"blocked"`
	Shifts           int    `json:"shifts"`
	TimeOnIce        string `json:"timeOnIce"`
	TimeOnIcePerGame string `json:"timeOnIcePerGame"`
}

// Split is one reporting row: a single game in game-log mode, the whole season otherwise.
type Split struct {
	Season string `json:"season"`
	Date   string `json:"date"`
	Stat   Stat   `json:"stat"`
}

// Report is the list of splits returned by one stats query.
type Report struct {
	DisplayName string  `json:"displayName"`
	Splits      []Split `json:"splits"`
}

// MonthlyBucket sums points for the games of one month. Month is 0-based (January is 0).
type MonthlyBucket struct {
	Month  int `json:"month"`
	Points int `json:"points"`
}
