package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/streamflix-cli/streamflix/internal/ui"
	"github.com/streamflix-cli/streamflix/log"
	"github.com/streamflix-cli/streamflix/open"
	"github.com/streamflix-cli/streamflix/source"
	"github.com/streamflix-cli/streamflix/view"
)

func (b *statefulBubble) loadHot() tea.Cmd {
	return func() tea.Msg {
		b.browser.LoadHot(b.ctx)
		return nil
	}
}

func (b *statefulBubble) searchContent(keyword string) tea.Cmd {
	return func() tea.Msg {
		b.browser.Search(b.ctx, keyword)
		return nil
	}
}

func (b *statefulBubble) clearSearch() tea.Cmd {
	return func() tea.Msg {
		b.browser.ClearSearch()
		return nil
	}
}

func (b *statefulBubble) showDetail(card view.Card) tea.Cmd {
	return func() tea.Msg {
		b.browser.ShowDetail(b.ctx, card)
		return nil
	}
}

func (b *statefulBubble) playStream(id source.Identity, title string) tea.Cmd {
	return func() tea.Msg {
		b.browser.PlayStream(b.ctx, id, title)
		return nil
	}
}

func (b *statefulBubble) closePlayer() tea.Cmd {
	return func() tea.Msg {
		b.browser.ClosePlayer()
		return nil
	}
}

func (b *statefulBubble) startPlayback(state view.PlayerState) tea.Cmd {
	return func() tea.Msg {
		started, err := b.browser.Start(state)
		return playbackMsg{state: started, err: err}
	}
}

// openLink hands the stream link to the system handler, e.g. a browser.
func (b *statefulBubble) openLink(link string) tea.Cmd {
	return func() tea.Msg {
		if err := open.Start(link); err != nil {
			log.Warnf("open %s: %s", link, err)
			return ui.NotificationMsg(fmt.Sprintf("Could not open link: %s", err))
		}
		return ui.NotificationMsg("Opened in the default handler")
	}
}
