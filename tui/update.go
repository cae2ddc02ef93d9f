package tui

import (
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/internal/ui"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/query"
	"github.com/streamflix-cli/streamflix/view"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, tea.Batch(cmds...)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, tea.Batch(cmds...)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, tea.Batch(append(cmds, cmd)...)
	case renderMsg:
		b.render(msg.region, msg.ins)
		return b, tea.Batch(append(cmds, b.waitForEvent())...)
	case navigateMsg:
		b.screen = view.State(msg)
		b.refreshState()
		return b, tea.Batch(append(cmds, b.waitForEvent())...)
	case playbackMsg:
		b.player = msg.state
		if msg.err != nil {
			cmds = append(cmds, ui.Notify(msg.err.Error()))
		}
		return b, tea.Batch(cmds...)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			b.cancel()
			return b, tea.Quit
		}
	}

	var (
		cmd   tea.Cmd
		model tea.Model
	)

	switch b.state {
	case homeState:
		model, cmd = b.updateHome(msg)
	case searchState:
		model, cmd = b.updateSearch(msg)
	case resultsState:
		model, cmd = b.updateResults(msg)
	case detailState:
		model, cmd = b.updateDetail(msg)
	case playerState:
		model, cmd = b.updatePlayer(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	default:
		model = b
	}

	return model, tea.Batch(append(cmds, cmd)...)
}

// render applies one instruction to the component of its region.
func (b *statefulBubble) render(region view.Region, ins view.Instruction) {
	switch region {
	case view.Movies, view.Series, view.Search:
		b.renderList(region, ins)
	case view.Detail:
		b.renderDetail(ins)
	case view.Player:
		if overlay, ok := ins.(view.Overlay); ok {
			b.player = overlay.Player
		}
	}
}

func (b *statefulBubble) renderList(region view.Region, ins view.Instruction) {
	listC := b.lists()[region]

	_, b.loading[region] = ins.(view.Loading)
	b.notices[region] = view.Text(ins)

	cards, ok := ins.(view.Cards)
	if !ok {
		listC.SetItems(nil)
		return
	}

	kind := lo.Ternary(region == view.Series, icon.Series, icon.Movie)

	items := lo.Map(cards.Cards, func(card view.Card, _ int) list.Item {
		return &listItem{card: card, kind: kind}
	})
	if viper.GetBool(key.TUIReverseLists) {
		items = lo.Reverse(items)
	}

	if cards.Heading != "" {
		listC.Title = cards.Heading
	}
	listC.SetItems(items)
	listC.ResetSelected()
}

func (b *statefulBubble) renderDetail(ins view.Instruction) {
	_, b.loading[view.Detail] = ins.(view.Loading)
	b.notices[view.Detail] = view.Text(ins)

	if page, ok := ins.(view.Page); ok {
		b.page = mo.Some(page.Page)
		b.detailC.SetContent(b.renderPage(page.Page))
		b.detailC.GotoTop()
	} else {
		b.page = mo.None[view.DetailPage]()
	}
}

// selectedCard returns the card under the cursor of the focused list.
func (b *statefulBubble) selectedCard() mo.Option[view.Card] {
	item, ok := b.focused().SelectedItem().(*listItem)
	if !ok {
		return mo.None[view.Card]()
	}
	return mo.Some(item.card)
}

func (b *statefulBubble) openSelected() tea.Cmd {
	card, ok := b.selectedCard().Get()
	if !ok {
		return nil
	}

	b.selected = card
	return b.showDetail(card)
}

func (b *statefulBubble) startTyping() tea.Cmd {
	b.typing = true
	b.refreshState()
	return b.inputC.Focus()
}

// updateList moves the cursor of the focused list, wrapping around at both ends.
func (b *statefulBubble) updateList(msg tea.Msg) tea.Cmd {
	listC := b.focused()

	if msg, ok := msg.(tea.KeyMsg); ok {
		n := len(listC.Items())
		switch {
		case bubblesKey.Matches(msg, b.keymap.up) && n > 0 && listC.Index() == 0:
			listC.Select(n - 1)
			return nil
		case bubblesKey.Matches(msg, b.keymap.down) && n > 0 && listC.Index() == n-1:
			listC.Select(0)
			return nil
		}
	}

	var cmd tea.Cmd
	*listC, cmd = listC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			b.cancel()
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.search):
			return b, b.startTyping()
		case bubblesKey.Matches(msg, b.keymap.switchList):
			b.focus = lo.Ternary(b.focus == view.Movies, view.Series, view.Movies)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.reload):
			return b, tea.Batch(b.loadHot(), b.spinnerC.Tick)
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b, b.openSelected()
		}
	}

	return b, b.updateList(msg)
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			b.typing = false
			b.inputC.Blur()
			b.searchSuggestion = mo.None[string]()
			b.refreshState()
			return b, tea.Batch(b.searchContent(b.inputC.Value()), b.spinnerC.Tick)
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.SetCursor(len(b.inputC.Value()))
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.typing = false
			b.inputC.Blur()
			b.inputC.SetValue("")
			b.searchSuggestion = mo.None[string]()
			b.refreshState()
			return b, b.clearSearch()
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if value := strings.TrimSpace(b.inputC.Value()); value != "" {
		b.searchSuggestion = query.Suggest(value)
	} else {
		b.searchSuggestion = mo.None[string]()
	}

	return b, cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			b.cancel()
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.search):
			return b, b.startTyping()
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.SetValue("")
			return b, b.clearSearch()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			return b, b.openSelected()
		}
	}

	return b, b.updateList(msg)
}

func (b *statefulBubble) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			b.cancel()
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.play):
			if page, ok := b.page.Get(); ok {
				return b, tea.Batch(b.playStream(page.Identity, page.Title), b.spinnerC.Tick)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.SetValue("")
			return b, b.clearSearch()
		}
	}

	b.detailC, cmd = b.detailC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePlayer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			return b, b.closePlayer()
		case bubblesKey.Matches(msg, b.keymap.play) && b.player.Link != "":
			return b, b.startPlayback(b.player)
		case bubblesKey.Matches(msg, b.keymap.openURL) && b.player.Link != "":
			return b, b.openLink(b.player.Link)
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.lastError = nil
			b.refreshState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			b.cancel()
			return b, tea.Quit
		}
	}

	return b, nil
}
