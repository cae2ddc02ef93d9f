package browse

import (
	"sync"

	"github.com/streamflix-cli/streamflix/view"
)

// ViewState decides which screen is visible. It performs no I/O.
type ViewState struct {
	mu    sync.Mutex
	state view.State
	nav   view.Navigator
}

// NewViewState starts on the home screen with the overlay hidden.
func NewViewState(nav view.Navigator) *ViewState {
	return &ViewState{state: view.State{Screen: view.Home}, nav: nav}
}

// Set shows search results when searching, the detail page when detail, and home when neither.
// Detail takes precedence if both are set. The player overlay is always hidden.
func (v *ViewState) Set(searching, detail bool) view.State {
	home := !searching && !detail

	next := view.State{}
	switch {
	case home:
		next.Screen = view.Home
	case detail:
		next.Screen = view.DetailScreen
	default:
		next.Screen = view.SearchResults
	}

	return v.apply(next)
}

// ShowPlayer raises the overlay above the current screen.
func (v *ViewState) ShowPlayer() view.State {
	return v.update(func(s *view.State) { s.PlayerVisible = true })
}

// HidePlayer lowers the overlay and keeps the current screen.
func (v *ViewState) HidePlayer() view.State {
	return v.update(func(s *view.State) { s.PlayerVisible = false })
}

// State returns the current state.
func (v *ViewState) State() view.State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// apply replaces the state.
func (v *ViewState) apply(next view.State) view.State {
	return v.update(func(s *view.State) { *s = next })
}

// update changes the state under the lock and notifies the navigator only
// when the state actually changed.
func (v *ViewState) update(change func(*view.State)) view.State {
	v.mu.Lock()
	prev := v.state
	change(&v.state)
	next := v.state
	v.mu.Unlock()

	if next != prev && v.nav != nil {
		v.nav.Navigate(next)
	}
	return next
}
