// Package browse drives the content fetchers and the view state.
//
// Every fetcher issues exactly one request, normalizes the response and renders the
// outcome into the injected view sinks. Fetchers block until their request completes;
// shells run them on their own goroutines. Results of superseded requests are dropped.
package browse

import (
	"errors"

	"github.com/streamflix-cli/streamflix/player"
	"github.com/streamflix-cli/streamflix/query"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/view"
)

// DefaultMinKeywordLength is the shortest trimmed keyword that issues a search.
const DefaultMinKeywordLength = 2

// ErrNothingToPlay is returned by Start for overlays without a link.
var ErrNothingToPlay = errors.New("no stream link to play")

// Options configures a Browser.
type Options struct {
	// Source is the content backend. Required.
	Source source.Source

	// Sinks receives render instructions and navigation. Nil discards everything.
	Sinks *view.Sinks

	// Player starts playback of resolved links. Nil leaves playback to the user.
	Player player.Player

	// Autoplay starts the player as soon as a link resolves.
	Autoplay bool

	// MinKeywordLength raises the search threshold. Values below DefaultMinKeywordLength are ignored.
	MinKeywordLength int

	// Queries remembers submitted keywords. Optional.
	Queries *query.Session
}

// Browser is the presentation core shared by every shell.
type Browser struct {
	src       source.Source
	sinks     *view.Sinks
	player    player.Player
	autoplay  bool
	minLength int
	queries   *query.Session

	view   *ViewState
	tokens *tokens
}

// New creates a Browser on the home screen.
func New(options Options) *Browser {
	sinks := options.Sinks
	if sinks == nil {
		sinks = view.NewSinks()
	}

	minLength := max(DefaultMinKeywordLength, options.MinKeywordLength)

	return &Browser{
		src:       options.Source,
		sinks:     sinks,
		player:    options.Player,
		autoplay:  options.Autoplay,
		minLength: minLength,
		queries:   options.Queries,
		view:      NewViewState(sinks),
		tokens:    newTokens(),
	}
}

// Source returns the content backend.
func (b *Browser) Source() source.Source {
	return b.src
}

// State returns the current view state.
func (b *Browser) State() view.State {
	return b.view.State()
}

// ClearSearch returns to the home screen without issuing a request.
func (b *Browser) ClearSearch() view.State {
	return b.navigate(false, false)
}

// ClosePlayer hides the overlay. A stream still resolving is discarded.
func (b *Browser) ClosePlayer() view.State {
	b.tokens.begin(view.Player, nil)
	return b.view.HidePlayer()
}

// Close releases the player.
func (b *Browser) Close() error {
	if b.player == nil {
		return nil
	}
	return b.player.Close()
}

// navigate switches screens. Hiding the overlay also invalidates any stream request in flight.
func (b *Browser) navigate(searching, detail bool) view.State {
	b.tokens.begin(view.Player, nil)
	return b.view.Set(searching, detail)
}

func (b *Browser) render(region view.Region, ins view.Instruction) func() {
	return func() {
		b.sinks.Render(region, ins)
	}
}
