// Package mini is a prompt-driven shell for terminals where the full-screen interface is unwanted.
package mini

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/streamflix-cli/streamflix/browse"
	"github.com/streamflix-cli/streamflix/util"
	"github.com/streamflix-cli/streamflix/view"
)

var truncateAt = 100

// Options configures the prompt shell.
type Options struct {
	// Keyword is searched right away when set.
	Keyword string
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	ctx      context.Context
	browser  *browse.Browser
	recorder *view.Recorder

	keyword  string
	region   view.Region
	selected view.Card
	player   view.PlayerState
}

func newMini(ctx context.Context, browser *browse.Browser, recorder *view.Recorder) *mini {
	return &mini{
		statesHistory: util.Stack[state]{},
		ctx:           ctx,
		browser:       browser,
		recorder:      recorder,
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

// Run drives the prompts until the user quits.
func Run(options *Options) error {
	recorder := view.NewRecorder()

	browser, err := browse.Configured(recorder.Sinks())
	if err != nil {
		return err
	}
	defer browser.Close()

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	m := newMini(context.Background(), browser, recorder)
	m.state = homeState
	if options.Keyword != "" {
		m.keyword = options.Keyword
		m.state = searchState
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			// Ctrl+C inside a prompt ends the session quietly.
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case homeState:
		return m.handleHomeState()
	case searchState:
		return m.handleSearchState()
	case listState:
		return m.handleListState()
	case detailState:
		return m.handleDetailState()
	case playerState:
		return m.handlePlayerState()
	}

	return nil
}
