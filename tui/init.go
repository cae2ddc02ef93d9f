package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/streamflix-cli/streamflix/internal/ui"
	"github.com/streamflix-cli/streamflix/version"
)

// Init starts listening for browser events and loads the home screen.
// A keyword passed on the command line is searched right away.
func (b *statefulBubble) Init() tea.Cmd {
	load := b.loadHot()
	if b.options.Keyword != "" {
		load = tea.Sequence(load, b.searchContent(b.options.Keyword))
	}

	return tea.Batch(
		textinput.Blink,
		b.waitForEvent(),
		load,
		b.spinnerC.Tick,
		b.checkVersion(),
	)
}

func (b *statefulBubble) checkVersion() tea.Cmd {
	return func() tea.Msg {
		if notice, ok := version.Notice().Get(); ok {
			return ui.NotificationMsg(notice)
		}
		return nil
	}
}
