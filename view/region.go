// Package view turns normalized content into render instructions and delivers them to view sinks.
package view

import "fmt"

// Region is a named render target.
type Region int

const (
	Movies Region = iota + 1
	Series
	Search
	Detail
	Player
)

// Regions lists every region in display order.
func Regions() []Region {
	return []Region{Movies, Series, Search, Detail, Player}
}

func (r Region) String() string {
	switch r {
	case Movies:
		return "movies"
	case Series:
		return "series"
	case Search:
		return "search"
	case Detail:
		return "detail"
	case Player:
		return "player"
	default:
		return "unknown"
	}
}

// Screen is one of the mutually exclusive top-level views.
type Screen int

const (
	Home Screen = iota
	SearchResults
	DetailScreen
)

func (s Screen) String() string {
	switch s {
	case Home:
		return "home"
	case SearchResults:
		return "search-results"
	case DetailScreen:
		return "detail"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the screen by name.
func (s Screen) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// Regions returns the regions visible on the screen.
func (s Screen) Regions() []Region {
	switch s {
	case SearchResults:
		return []Region{Search}
	case DetailScreen:
		return []Region{Detail}
	default:
		return []Region{Movies, Series}
	}
}

// State is the visible screen plus the player overlay flag.
type State struct {
	Screen        Screen `json:"screen"`
	PlayerVisible bool   `json:"playerVisible"`
}

// Visible reports whether region is shown in this state.
func (s State) Visible(region Region) bool {
	if region == Player {
		return s.PlayerVisible
	}
	for _, r := range s.Screen.Regions() {
		if r == region {
			return true
		}
	}
	return false
}
