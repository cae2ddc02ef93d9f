package browse

import (
	"context"

	"github.com/streamflix-cli/streamflix/log"
	"github.com/streamflix-cli/streamflix/player"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/view"
)

// PlayStream raises the player overlay, resolves the stream of id and attempts playback.
// The overlay shows a pending state before the request is issued.
func (b *Browser) PlayStream(ctx context.Context, id source.Identity, title string) view.PlayerState {
	b.view.ShowPlayer()
	tok := b.tokens.begin(view.Player, b.render(view.Player, view.Overlay{Player: view.FetchingPlayer(title)}))

	entry := log.WithField("id", id.String())
	entry.Debug("resolving stream")
	result := source.ParseStream(b.src.Media(ctx, id))

	switch result.Kind {
	case source.UnknownShape:
		entry.WithField("raw", string(result.Raw)).Error("unexpected media response structure")
	case source.TransportFailure:
		entry.WithField("cause", result.CauseText()).Error("media request failed")
	}

	state := view.StreamOutcome(result, title)
	if !b.tokens.commit(view.Player, tok, b.render(view.Player, view.Overlay{Player: state})) {
		return state
	}

	if state.Status != view.Ready {
		return state
	}

	if !b.autoplay || b.player == nil {
		state = view.AwaitingStart(state)
	} else if err := b.player.Play(state.Link, state.Title); err != nil {
		entry.WithField("player", b.player.Name()).Warnf("autoplay failed: %s", err)
		state = view.PlaybackFailed(state)
	} else {
		entry.WithField("player", b.player.Name()).Info("playback started")
		return state
	}

	b.tokens.commit(view.Player, tok, b.render(view.Player, view.Overlay{Player: state}))
	return state
}

// Start plays the link of state on demand. Without a configured player the system handler is used.
func (b *Browser) Start(state view.PlayerState) (view.PlayerState, error) {
	if state.Link == "" {
		return state, ErrNothingToPlay
	}

	p := b.player
	if p == nil {
		p = player.NewSystem()
	}

	if err := p.Play(state.Link, state.Title); err != nil {
		failed := view.PlaybackFailed(state)
		b.tokens.begin(view.Player, b.render(view.Player, view.Overlay{Player: failed}))
		return failed, err
	}

	started := view.Started(state)
	b.tokens.begin(view.Player, b.render(view.Player, view.Overlay{Player: started}))
	return started, nil
}
