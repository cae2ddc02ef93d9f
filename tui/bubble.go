package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/browse"
	"github.com/streamflix-cli/streamflix/constant"
	"github.com/streamflix-cli/streamflix/internal/ui"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/style"
	"github.com/streamflix-cli/streamflix/util"
	"github.com/streamflix-cli/streamflix/view"
)

// statefulBubble is the bubbletea model. Content arrives from the browser through events;
// the model never calls the browser on the update goroutine.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	browser *browse.Browser
	ctx     context.Context
	cancel  context.CancelFunc
	events  chan tea.Msg

	screen view.State
	typing bool
	focus  view.Region

	// components
	spinnerC spinner.Model
	inputC   textinput.Model
	moviesC  list.Model
	seriesC  list.Model
	searchC  list.Model
	detailC  viewport.Model
	helpC    help.Model
	notifier *ui.Model

	notices  map[view.Region]string
	loading  map[view.Region]bool
	page     mo.Option[view.DetailPage]
	player   view.PlayerState
	selected view.Card

	searchSuggestion mo.Option[string]
	lastError        error

	width, height int
	options       *Options
}

func (b *statefulBubble) refreshState() {
	b.state = deriveState(b.screen, b.typing, b.lastError)
	b.keymap.setState(b.state)
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.refreshState()
}

// lists returns the list component of every card region.
func (b *statefulBubble) lists() map[view.Region]*list.Model {
	return map[view.Region]*list.Model{
		view.Movies: &b.moviesC,
		view.Series: &b.seriesC,
		view.Search: &b.searchC,
	}
}

// focused returns the list that receives navigation keys on the current screen.
func (b *statefulBubble) focused() *list.Model {
	if b.state == resultsState {
		return &b.searchC
	}
	if b.focus == view.Series {
		return &b.seriesC
	}
	return &b.moviesC
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	styledWidth := width - x
	styledHeight := height - y

	// The search bar and help take three lines above and below the lists.
	listHeight := height - yy - 3
	listWidth := width - xx

	b.moviesC.SetSize(listWidth/2, listHeight)
	b.seriesC.SetSize(listWidth-listWidth/2, listHeight)
	b.searchC.SetSize(listWidth, listHeight)

	b.detailC.Width = styledWidth
	b.detailC.Height = styledHeight - 2
	if page, ok := b.page.Get(); ok {
		b.detailC.SetContent(b.renderPage(page))
	}

	b.inputC.Width = styledWidth
	b.helpC.Width = listWidth

	b.width = styledWidth
	b.height = styledHeight
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	ctx, cancel := context.WithCancel(context.Background())

	bubble := statefulBubble{
		keymap:   keymap,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan tea.Msg, 64),
		focus:    view.Movies,
		notices:  make(map[view.Region]string),
		loading:  make(map[view.Region]bool),
		notifier: ui.New(style.FaintColor),
		options:  options,
	}

	makeList := func(title string, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(titleColor).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)
		listC.SetShowHelp(false)
		listC.SetFilteringEnabled(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search movies and series (v%s)", constant.Version)
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPrompt)

	bubble.moviesC = makeList("Hot Movies", style.AccentColor)
	bubble.seriesC = makeList("Trending Series", style.Peach)
	bubble.searchC = makeList("Search Results", style.Lavender)

	bubble.detailC = viewport.New(0, 0)

	if options.Keyword != "" {
		bubble.inputC.SetValue(options.Keyword)
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.refreshState()
	return &bubble
}
