package tui

import "github.com/streamflix-cli/streamflix/view"

type state int

const (
	homeState state = iota
	searchState
	resultsState
	detailState
	playerState
	errorState
)

// deriveState maps the browser's view state onto the key-handling state.
// Errors and the player overlay take priority over the screen underneath.
func deriveState(screen view.State, typing bool, err error) state {
	switch {
	case err != nil:
		return errorState
	case screen.PlayerVisible:
		return playerState
	case typing:
		return searchState
	}

	switch screen.Screen {
	case view.SearchResults:
		return resultsState
	case view.DetailScreen:
		return detailState
	default:
		return homeState
	}
}
