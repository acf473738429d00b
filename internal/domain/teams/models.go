package teams

// Team is the identity of a team as it appears inline in games, player details and team lookups.
// Kept in its own package so games and players can reference it without depending on each other.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	TeamName     string `json:"teamName,omitempty"`
	LocationName string `json:"locationName,omitempty"`
	Link         string `json:"link,omitempty"`
}
