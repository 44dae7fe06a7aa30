// Package station owns the ordered station list and the current-station
// cursor. The list is established once at startup and never mutated; the
// cursor wraps at both ends and can never leave [0, len).
package station

import "errors"

// ErrEmptyList is returned when constructing state over zero stations.
// The playlist resolver guarantees a non-empty list, so hitting this
// indicates a bug in the caller.
var ErrEmptyList = errors.New("station list is empty")

// State tracks which station is currently selected.
type State struct {
	stations []string
	current  int
}

// New creates station state over the given list, positioned at initial
// reduced modulo the list length. A persisted index from a playlist that
// has since shrunk therefore still lands on a valid station.
func New(stations []string, initial int) (*State, error) {
	if len(stations) == 0 {
		return nil, ErrEmptyList
	}
	s := &State{stations: stations}
	s.current = mod(initial, len(stations))
	return s, nil
}

// Current returns the selected station index and URL.
func (s *State) Current() (int, string) {
	return s.current, s.stations[s.current]
}

// Advance moves the cursor by delta, wrapping at both ends, and returns
// the new selection.
func (s *State) Advance(delta int) (int, string) {
	s.current = mod(s.current+delta, len(s.stations))
	return s.Current()
}

// Set positions the cursor at index, reduced modulo the list length, and
// returns the new selection.
func (s *State) Set(index int) (int, string) {
	s.current = mod(index, len(s.stations))
	return s.Current()
}

// Len returns the number of stations.
func (s *State) Len() int {
	return len(s.stations)
}

// Stations returns a copy of the station list.
func (s *State) Stations() []string {
	out := make([]string, len(s.stations))
	copy(out, s.stations)
	return out
}

// mod is a floored modulo: the result has the sign of n, so negative
// indices wrap to the end of the list.
func mod(i, n int) int {
	return ((i % n) + n) % n
}
