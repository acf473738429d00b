package statsapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teamDetailJSON = `{
  "copyright": "NHL",
  "teams": [{
    "id": 10,
    "name": "Toronto Maple Leafs",
    "abbreviation": "TOR",
    "teamName": "Maple Leafs",
    "locationName": "Toronto",
    "link": "/api/v1/teams/10",
    "roster": {"roster": [
      {"person": {"id": 8479318, "fullName": "Auston Matthews", "link": "/api/v1/people/8479318"},
       "jerseyNumber": "34",
       "position": {"code": "C", "name": "Center", "type": "Forward", "abbreviation": "C"}}
    ]},
    "nextGameSchedule": {"dates": [{"date": "2021-03-02", "games": [{
      "gamePk": 2020020300,
      "gameDate": "2021-03-03T00:00:00Z",
      "teams": {
        "away": {"leagueRecord": {"wins": 10, "losses": 5, "ot": 2}, "score": 0, "team": {"id": 6, "name": "Boston Bruins"}},
        "home": {"leagueRecord": {"wins": 15, "losses": 4, "ot": 1}, "score": 0, "team": {"id": 10, "name": "Toronto Maple Leafs"}}
      },
      "venue": {"name": "Scotiabank Arena"}
    }]}]}
  }]
}`

func TestDecodeTeamMapsRosterAndSchedules(t *testing.T) {
	detail, err := DecodeTeam(teamDetailJSON)
	require.NoError(t, err)

	assert.Equal(t, 10, detail.Team.ID)
	assert.Equal(t, "TOR", detail.Team.Abbreviation)
	require.Len(t, detail.Roster, 1)
	assert.Equal(t, "Auston Matthews", detail.Roster[0].Person.FullName)
	assert.Equal(t, "34", detail.Roster[0].JerseyNumber)
	assert.Equal(t, "C", detail.Roster[0].Position.String())

	game, date, ok := detail.NextGameSchedule.First()
	require.True(t, ok)
	assert.Equal(t, "2021-03-02", date)
	assert.Equal(t, 6, game.Teams.Away.Team.ID)
	assert.Equal(t, 15, game.Teams.Home.LeagueRecord.Wins)
	assert.Equal(t, "Scotiabank Arena", game.Venue.Name)

	assert.False(t, detail.PreviousGameSchedule.HasGames(), "absent schedule decodes empty")
}

func TestDecodeTeamEmptyListIsMissingData(t *testing.T) {
	_, err := DecodeTeam(`{"teams": []}`)
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestDecodeMalformedJSONIsDecodeError(t *testing.T) {
	_, err := DecodeTeam(`{"teams": [`)
	dErr, ok := AsDecodeError(err)
	require.True(t, ok, "expected decode error, got %v", err)
	assert.Equal(t, "team", dErr.Entity)
	assert.True(t, IsUpstreamFailure(err))
}

func TestDecodeScheduleKeepsMediaPath(t *testing.T) {
	text := `{"dates": [{"date": "2021-02-27", "games": [{
	  "gamePk": 1,
	  "content": {"media": {"epg": [
	    {"title": "NHLTV", "items": []},
	    {"title": "Audio", "items": []},
	    {"title": "Extended Highlights", "items": [{"title": "Recap", "playbacks": [
	      {"name": "FLASH_192K_320X180", "url": "a"},
	      {"name": "FLASH_450K_400X224", "url": "b"},
	      {"name": "FLASH_1200K_640X360", "url": "https://cdn.example.com/recap.mp4"}
	    ]}]}
	  ]}}
	}]}]}`

	schedule, err := DecodeSchedule(text)
	require.NoError(t, err)
	game, _, ok := schedule.First()
	require.True(t, ok)
	require.Len(t, game.Content.Media.Epg, 3)
	assert.Equal(t, "https://cdn.example.com/recap.mp4", game.Content.Media.Epg[2].Items[0].Playbacks[2].URL)
}

func TestDecodeScheduleWithoutDatesIsEmpty(t *testing.T) {
	schedule, err := DecodeSchedule(`{"totalGames": 0, "dates": []}`)
	require.NoError(t, err)
	assert.False(t, schedule.HasGames())
}

func TestDecodePlayer(t *testing.T) {
	text := `{"people": [{
	  "id": 8479318, "fullName": "Auston Matthews", "firstName": "Auston", "lastName": "Matthews",
	  "primaryNumber": "34", "birthDate": "1997-09-17", "currentAge": 23, "nationality": "USA",
	  "height": "6' 3\"", "weight": 220, "shootsCatches": "L", "active": true, "rookie": false,
	  "rosterStatus": "Y", "currentTeam": {"id": 10, "name": "Toronto Maple Leafs"},
	  "primaryPosition": {"code": "C", "name": "Center", "type": "Forward", "abbreviation": "C"}
	}]}`

	player, err := DecodePlayer(text)
	require.NoError(t, err)
	assert.Equal(t, "Auston Matthews", player.FullName)
	assert.Equal(t, `6' 3"`, player.Height)
	assert.Equal(t, 220, player.Weight)
	assert.Equal(t, 10, player.CurrentTeam.ID)
	assert.Equal(t, "Center", player.PrimaryPosition.Name)

	_, err = DecodePlayer(`{"people": []}`)
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestDecodeSeason(t *testing.T) {
	season, err := DecodeSeason(`{"seasons": [{"seasonId": "20202021", "numberOfGames": 56}]}`)
	require.NoError(t, err)
	assert.Equal(t, "20202021", season.SeasonID)
	assert.Equal(t, 56, season.NumberOfGames)

	_, err = DecodeSeason(`{"seasons": []}`)
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestDecodeStats(t *testing.T) {
	text := `{"stats": [{"type": {"displayName": "gameLog"}, "splits": [
	  {"season": "20202021", "date": "2021-02-02", "stat": {"goals": 1, "assists": 2, "points": 3, "timeOnIce": "20:01"}},
	  {"season": "20202021", "date": "2021-01-30", "stat": {"goals": 0, "assists": 1, "points": 1}}
	]}]}`

	report, err := DecodeStats(text)
	require.NoError(t, err)
	assert.Equal(t, "gameLog", report.DisplayName)
	require.Len(t, report.Splits, 2)
	assert.Equal(t, 3, report.Splits[0].Stat.Points)
	assert.Equal(t, "20:01", report.Splits[0].Stat.TimeOnIce)
	assert.Equal(t, "2021-01-30", report.Splits[1].Date)

	report, err = DecodeStats(`{"stats": [{"type": {"displayName": "statsSingleSeason"}, "splits": []}]}`)
	require.NoError(t, err)
	assert.Empty(t, report.Splits)

	_, err = DecodeStats(`{"stats": []}`)
	assert.ErrorIs(t, err, ErrMissingData)
}
