package statsapi

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/nhl-team-insights/internal/domain"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/games"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/players"
	"github.com/preston-bernstein/nhl-team-insights/internal/domain/stats"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func decode(entity, text string, target any) error {
	if err := jsonAPI.UnmarshalFromString(text, target); err != nil {
		return &DecodeError{Entity: entity, Err: err}
	}
	return nil
}

// DecodeTeam reads a teams envelope and returns its first team.
func DecodeTeam(text string) (domain.TeamDetail, error) {
	var payload teamsResponse
	if err := decode("team", text, &payload); err != nil {
		return domain.TeamDetail{}, err
	}
	if len(payload.Teams) == 0 {
		return domain.TeamDetail{}, fmt.Errorf("decode team: no teams in response: %w", ErrMissingData)
	}
	return mapTeamDetail(payload.Teams[0]), nil
}

// DecodeSchedule reads a schedule response. Zero dates is a valid, empty schedule.
func DecodeSchedule(text string) (games.Schedule, error) {
	var payload scheduleResponse
	if err := decode("schedule", text, &payload); err != nil {
		return games.Schedule{}, err
	}
	return mapSchedule(payload), nil
}

// DecodePlayer reads a people envelope and returns its first player.
func DecodePlayer(text string) (players.Detail, error) {
	var payload peopleResponse
	if err := decode("player", text, &payload); err != nil {
		return players.Detail{}, err
	}
	if len(payload.People) == 0 {
		return players.Detail{}, fmt.Errorf("decode player: no people in response: %w", ErrMissingData)
	}
	return mapPlayer(payload.People[0]), nil
}

// DecodeSeason reads a seasons envelope and returns its first season.
func DecodeSeason(text string) (stats.Season, error) {
	var payload seasonsResponse
	if err := decode("season", text, &payload); err != nil {
		return stats.Season{}, err
	}
	if len(payload.Seasons) == 0 {
		return stats.Season{}, fmt.Errorf("decode season: no seasons in response: %w", ErrMissingData)
	}
	return mapSeason(payload.Seasons[0]), nil
}

// DecodeStats reads a stats envelope and returns its first report.
// A report with no splits is valid; an envelope with no reports is not.
func DecodeStats(text string) (stats.Report, error) {
	var payload statsResponse
	if err := decode("stats", text, &payload); err != nil {
		return stats.Report{}, err
	}
	if len(payload.Stats) == 0 {
		return stats.Report{}, fmt.Errorf("decode stats: no reports in response: %w", ErrMissingData)
	}
	return mapReport(payload.Stats[0]), nil
}
