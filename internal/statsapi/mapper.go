package statsapi

import (
	"github.com/preston-bernstein/nhl-team-insights/internal/domain"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/games"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/players"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/stats"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/teams"
)

func mapTeamDetail(t teamResponse) domain.TeamDetail {
	roster := make([]players.RosterEntry, 0, len(t.Roster.Roster))
	for _, entry := range t.Roster.Roster {
		roster = append(roster, players.RosterEntry{
			Person: players.Person{
				ID:       entry.Person.ID,
				FullName: entry.Person.FullName,
				Link:     entry.Person.Link,
			},
			JerseyNumber: entry.JerseyNumber,
			Position:     mapPosition(entry.Position),
		})
	}
	return domain.TeamDetail{
		Team: teams.Team{
			ID:           t.ID,
			Name:         t.Name,
			Abbreviation: t.Abbreviation,
			TeamName:     t.TeamName,
			LocationName: t.LocationName,
			Link:         t.Link,
		},
		Roster:               roster,
		NextGameSchedule:     mapSchedule(t.NextGameSchedule),
		PreviousGameSchedule: mapSchedule(t.PreviousGameSchedule),
	}
}

func mapTeamRef(t teamRefResponse) teams.Team {
	return teams.Team{
		ID:           t.ID,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		Link:         t.Link,
	}
}

func mapPosition(p positionResponse) players.Position {
	return players.Position{
		Code:         p.Code,
		Name:         p.Name,
		Type:         p.Type,
		Abbreviation: p.Abbreviation,
	}
}

func mapSchedule(s scheduleResponse) games.Schedule {
	dates := make([]games.ScheduleDate, 0, len(s.Dates))
	for _, d := range s.Dates {
		gameList := make([]games.Game, 0, len(d.Games))
		for _, g := range d.Games {
			gameList = append(gameList, mapGame(g))
		}
		dates = append(dates, games.ScheduleDate{Date: d.Date, Games: gameList})
	}
	return games.Schedule{Dates: dates}
}

func mapGame(g gameResponse) games.Game {
	return games.Game{
		GamePK:   g.GamePK,
		Link:     g.Link,
		GameDate: g.GameDate,
		Teams: games.Sides{
			Away: mapGameTeam(g.Teams.Away),
			Home: mapGameTeam(g.Teams.Home),
		},
		Venue:   games.Venue{Name: g.Venue.Name},
		Content: mapContent(g.Content),
	}
}

func mapGameTeam(t gameTeamResponse) games.GameTeam {
	return games.GameTeam{
		Team: mapTeamRef(t.Team),
		LeagueRecord: games.LeagueRecord{
			Wins:   t.LeagueRecord.Wins,
			Losses: t.LeagueRecord.Losses,
			OT:     t.LeagueRecord.OT,
		},
		Score: t.Score,
	}
}

func mapContent(c contentResponse) games.Content {
	epg := make([]games.Epg, 0, len(c.Media.Epg))
	for _, e := range c.Media.Epg {
		items := make([]games.MediaItem, 0, len(e.Items))
		for _, item := range e.Items {
			playbacks := make([]games.Playback, 0, len(item.Playbacks))
			for _, pb := range item.Playbacks {
				playbacks = append(playbacks, games.Playback{
					Name:   pb.Name,
					Width:  pb.Width,
					Height: pb.Height,
					URL:    pb.URL,
				})
			}
			items = append(items, games.MediaItem{Title: item.Title, Blurb: item.Blurb, Playbacks: playbacks})
		}
		epg = append(epg, games.Epg{Title: e.Title, Items: items})
	}
	return games.Content{Link: c.Link, Media: games.Media{Epg: epg}}
}

func mapPlayer(p playerResponse) players.Detail {
	return players.Detail{
		ID:              p.ID,
		FullName:        p.FullName,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		PrimaryNumber:   p.PrimaryNumber,
		BirthDate:       p.BirthDate,
		CurrentAge:      p.CurrentAge,
		Nationality:     p.Nationality,
		Height:          p.Height,
		Weight:          p.Weight,
		ShootsCatches:   p.ShootsCatches,
		Active:          p.Active,
		Rookie:          p.Rookie,
		RosterStatus:    p.RosterStatus,
		CurrentTeam:     mapTeamRef(p.CurrentTeam),
		PrimaryPosition: mapPosition(p.PrimaryPosition),
	}
}

func mapSeason(s seasonResponse) stats.Season {
	return stats.Season{
		SeasonID:               s.SeasonID,
		RegularSeasonStartDate: s.RegularSeasonStartDate,
		RegularSeasonEndDate:   s.RegularSeasonEndDate,
		SeasonEndDate:          s.SeasonEndDate,
		NumberOfGames:          s.NumberOfGames,
	}
}

func mapReport(r statsInfoResponse) stats.Report {
	splits := make([]stats.Split, 0, len(r.Splits))
	for _, s := range r.Splits {
		splits = append(splits, stats.Split{
			Season: s.Season,
			Date:   s.Date,
			Stat:   stats.Stat(s.Stat),
		})
	}
	return stats.Report{DisplayName: r.Type.DisplayName, Splits: splits}
}
