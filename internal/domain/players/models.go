package players

import "github.com/preston-bernstein/nhl-team-insights/internal/domain/teams"

// Person identifies a player and links to the player's detail endpoint.
type Person struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	Link     string `json:"link"`
}

// Position describes where a player lines up.
type Position struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Abbreviation string `json:"abbreviation"`
}

// String returns the short form used for display and ordering.
func (p Position) String() string {
	if p.Abbreviation != "" {
		return p.Abbreviation
	}
	return p.Code
}

// RosterEntry is one player on a team roster.
// JerseyNumber is kept as text; the upstream sends it as a string.
type RosterEntry struct {
	Person       Person   `json:"person"`
	JerseyNumber string   `json:"jerseyNumber"`
	Position     Position `json:"position"`
}

// Detail is a player fetched individually, with biographical fields.
type Detail struct {
	ID              int        `json:"id"`
	FullName        string     `json:"fullName"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	PrimaryNumber   string     `json:"primaryNumber"`
	BirthDate       string     `json:"birthDate"`
	CurrentAge      int        `json:"currentAge"`
	Nationality     string     `json:"nationality"`
	Height          string     `json:"height"`
	Weight          int        `json:"weight"`
	ShootsCatches   string     `json:"shootsCatches"`
	Active          bool       `json:"active"`
	Rookie          bool       `json:"rookie"`
	RosterStatus    string     `json:"rosterStatus"`
	CurrentTeam     teams.Team `json:"currentTeam"`
	PrimaryPosition Position   `json:"primaryPosition"`
}
