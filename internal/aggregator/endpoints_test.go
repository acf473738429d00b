package aggregator

import "testing"

func TestDefaultEndpointsRenderQueries(t *testing.T) {
	e := DefaultEndpoints().WithDefaults()
	playerURL := e.PlayerURL("/api/v1/people/8479318")

	cases := []struct {
		got  string
		want string
	}{
		{e.TeamDetailURL(10), "https://statsapi.web.nhl.com/api/v1/teams/10?expand=team.roster,team.schedule.next,team.schedule.previous"},
		{e.TeamURL(6), "https://statsapi.web.nhl.com/api/v1/teams/6"},
		{e.DayScheduleURL(10, "2021-02-27"), "https://statsapi.web.nhl.com/api/v1/schedule?teamId=10&startDate=2021-02-27&endDate=2021-02-27&expand=schedule.game.content.media.epg"},
		{e.CurrentSeasonURL(), "https://statsapi.web.nhl.com/api/v1/seasons/current"},
		{playerURL, "https://statsapi.web.nhl.com/api/v1/people/8479318"},
		{e.SingleSeasonStatsURL(playerURL, "20202021"), "https://statsapi.web.nhl.com/api/v1/people/8479318/stats?stats=statsSingleSeason&season=20202021"},
		{e.GameLogURL(playerURL, "20202021"), "https://statsapi.web.nhl.com/api/v1/people/8479318/stats?stats=gameLog&season=20202021"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("expected %s, got %s", c.want, c.got)
		}
	}
}

func TestWithDefaultsKeepsOverridesAndTrimsSlash(t *testing.T) {
	e := Endpoints{
		BaseURL:       "http://localhost:8080/api/v1/",
		CurrentSeason: "{base}/seasons/20202021",
	}.WithDefaults()

	if got := e.CurrentSeasonURL(); got != "http://localhost:8080/api/v1/seasons/20202021" {
		t.Fatalf("unexpected override result %s", got)
	}
	if got := e.TeamURL(1); got != "http://localhost:8080/api/v1/teams/1" {
		t.Fatalf("unexpected default template result %s", got)
	}
	if e.LinkBaseURL != DefaultLinkBaseURL {
		t.Fatalf("expected default link base, got %s", e.LinkBaseURL)
	}
}
