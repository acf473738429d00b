// Package roster orders roster entries for display.
package roster

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nhl-team-insights/internal/domain/players"
)

// Order names a roster ordering.
type Order string

const (
	ByJersey   Order = "jersey"
	ByName     Order = "name"
	ByPosition Order = "position"
)

// ErrUnknownOrder is returned by ParseOrder for names it does not recognise.
var ErrUnknownOrder = errors.New("roster: unknown sort order")

// ParseOrder maps a query value to an Order. Empty means ByJersey.
func ParseOrder(raw string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ByJersey:
		return ByJersey, nil
	case ByName:
		return ByName, nil
	case ByPosition:
		return ByPosition, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrder, raw)
	}
}

// JerseyNumberError reports a jersey number that is not an integer.
type JerseyNumberError struct {
	Jersey     string
	PlayerName string
	Err        error
}

func (e *JerseyNumberError) Error() string {
	return fmt.Sprintf("roster: jersey number %q for %s is not numeric: %v", e.Jersey, e.PlayerName, e.Err)
}

func (e *JerseyNumberError) Unwrap() error { return e.Err }

// Sort returns a copy of entries in the given order. The input is never modified.
func Sort(entries []players.RosterEntry, order Order) ([]players.RosterEntry, error) {
	switch order {
	case ByJersey:
		return SortByJerseyNumber(entries)
	case ByName:
		return SortByName(entries), nil
	case ByPosition:
		return SortByPosition(entries), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
	}
}

// SortByJerseyNumber orders entries by numeric jersey number, ascending.
// The first non-numeric jersey aborts the sort with a *JerseyNumberError.
func SortByJerseyNumber(entries []players.RosterEntry) ([]players.RosterEntry, error) {
	type keyed struct {
		number int
		entry  players.RosterEntry
	}
	rows := make([]keyed, 0, len(entries))
	for _, e := range entries {
		n, err := strconv.Atoi(strings.TrimSpace(e.JerseyNumber))
		if err != nil {
			return nil, &JerseyNumberError{Jersey: e.JerseyNumber, PlayerName: e.Person.FullName, Err: err}
		}
		rows = append(rows, keyed{number: n, entry: e})
	}
	slices.SortStableFunc(rows, func(a, b keyed) int {
		return a.number - b.number
	})

	out := make([]players.RosterEntry, len(rows))
	for i, r := range rows {
		out[i] = r.entry
	}
	return out, nil
}

// SortByName orders entries by full name, ignoring case.
func SortByName(entries []players.RosterEntry) []players.RosterEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b players.RosterEntry) int {
		return strings.Compare(strings.ToLower(a.Person.FullName), strings.ToLower(b.Person.FullName))
	})
	return out
}

// SortByPosition orders entries by position abbreviation, falling back to the code.
func SortByPosition(entries []players.RosterEntry) []players.RosterEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b players.RosterEntry) int {
		return strings.Compare(a.Position.String(), b.Position.String())
	})
	return out
}
