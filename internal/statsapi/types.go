package statsapi

// Wire shapes of the stats API. Unknown fields are ignored and missing ones decode to zero values.

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID                   int              `json:"id"`
	Name                 string           `json:"name"`
	Abbreviation         string           `json:"abbreviation"`
	TeamName             string           `json:"teamName"`
	LocationName         string           `json:"locationName"`
	Link                 string           `json:"link"`
	Roster               rosterResponse   `json:"roster"`
	NextGameSchedule     scheduleResponse `json:"nextGameSchedule"`
	PreviousGameSchedule scheduleResponse `json:"previousGameSchedule"`
}

type teamRefResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Link         string `json:"link"`
}

type rosterResponse struct {
	Roster []rosterEntryResponse `json:"roster"`
}

type rosterEntryResponse struct {
	Person       personResponse   `json:"person"`
	JerseyNumber string           `json:"jerseyNumber"`
	Position     positionResponse `json:"position"`
}

type personResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	Link     string `json:"link"`
}

type positionResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Abbreviation string `json:"abbreviation"`
}

type scheduleResponse struct {
	Dates []dateResponse `json:"dates"`
}

type dateResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePK   int             `json:"gamePk"`
	Link     string          `json:"link"`
	GameDate string          `json:"gameDate"`
	Teams    sidesResponse   `json:"teams"`
	Venue    venueResponse   `json:"venue"`
	Content  contentResponse `json:"content"`
}

type sidesResponse struct {
	Away gameTeamResponse `json:"away"`
	Home gameTeamResponse `json:"home"`
}

type gameTeamResponse struct {
	LeagueRecord leagueRecordResponse `json:"leagueRecord"`
	Score        int                  `json:"score"`
	Team         teamRefResponse      `json:"team"`
}

type leagueRecordResponse struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	OT     int `json:"ot"`
}

type venueResponse struct {
	Name string `json:"name"`
}

type contentResponse struct {
	Link  string        `json:"link"`
	Media mediaResponse `json:"media"`
}

type mediaResponse struct {
	Epg []epgResponse `json:"epg"`
}

type epgResponse struct {
	Title string              `json:"title"`
	Items []mediaItemResponse `json:"items"`
}

type mediaItemResponse struct {
	Title     string             `json:"title"`
	Blurb     string             `json:"blurb"`
	Playbacks []playbackResponse `json:"playbacks"`
}

type playbackResponse struct {
	Name   string `json:"name"`
	Width  string `json:"width"`
	Height string `json:"height"`
	URL    string `json:"url"`
}

type peopleResponse struct {
	People []playerResponse `json:"people"`
}

type playerResponse struct {
	ID              int              `json:"id"`
	FullName        string           `json:"fullName"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	PrimaryNumber   string           `json:"primaryNumber"`
	BirthDate       string           `json:"birthDate"`
	CurrentAge      int              `json:"currentAge"`
	Nationality     string           `json:"nationality"`
	Height          string           `json:"height"`
	Weight          int              `json:"weight"`
	ShootsCatches   string           `json:"shootsCatches"`
	Active          bool             `json:"active"`
	Rookie          bool             `json:"rookie"`
	RosterStatus    string           `json:"rosterStatus"`
	CurrentTeam     teamRefResponse  `json:"currentTeam"`
	PrimaryPosition positionResponse `json:"primaryPosition"`
}

type seasonsResponse struct {
	Seasons []seasonResponse `json:"seasons"`
}

type seasonResponse struct {
	SeasonID               string `json:"seasonId"`
	RegularSeasonStartDate string `json:"regularSeasonStartDate"`
	RegularSeasonEndDate   string `json:"regularSeasonEndDate"`
	SeasonEndDate          string `json:"seasonEndDate"`
	NumberOfGames          int    `json:"numberOfGames"`
}

type statsResponse struct {
	Stats []statsInfoResponse `json:"stats"`
}

type statsInfoResponse struct {
	Type   statsTypeResponse `json:"type"`
	Splits []splitResponse   `json:"splits"`
}

type statsTypeResponse struct {
	DisplayName string `json:"displayName"`
}

type splitResponse struct {
	Season string       `json:"season"`
	Date   string       `json:"date"`
	Stat   statResponse `json:"stat"`
}

type statResponse struct {
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
