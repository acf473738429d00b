package aggregator

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nhl-team-insights/internal/domain/games"
	"github.com/preston-bernstein/nhl-team-insights/internal/statsapi"
)

// Position of the extended highlight inside a game's media guide:
// epg[2].items[0].playbacks[2].
const (
	highlightEpgIndex      = 2
	highlightItemIndex     = 0
	highlightPlaybackIndex = 2
)

// ErrMediaUnavailable reports a schedule without a highlight at the expected position.
var ErrMediaUnavailable = errors.New("aggregator: highlight media unavailable")

// HighlightURL returns the extended highlight URL of the first game in a day schedule.
// Every level is bounds-checked; a missing level or an empty URL is ErrMediaUnavailable.
func HighlightURL(schedule games.Schedule) (string, error) {
	game, _, ok := schedule.First()
	if !ok {
		return "", mediaMissing("schedule has no games")
	}
	epg := game.Content.Media.Epg
	if len(epg) <= highlightEpgIndex {
		return "", mediaMissing(fmt.Sprintf("epg has %d entries", len(epg)))
	}
	items := epg[highlightEpgIndex].Items
	if len(items) <= highlightItemIndex {
		return "", mediaMissing(fmt.Sprintf("epg %q has no items", epg[highlightEpgIndex].Title))
	}
	playbacks := items[highlightItemIndex].Playbacks
	if len(playbacks) <= highlightPlaybackIndex {
		return "", mediaMissing(fmt.Sprintf("item has %d playbacks", len(playbacks)))
	}
	url := playbacks[highlightPlaybackIndex].URL
	if url == "" {
		return "", mediaMissing("playback url is empty")
	}
	return url, nil
}

func mediaMissing(detail string) error {
	return fmt.Errorf("%w: %s: %w", ErrMediaUnavailable, detail, statsapi.ErrMissingData)
}
