package mini

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/query"
	"github.com/streamflix-cli/streamflix/style"
	"github.com/streamflix-cli/streamflix/view"
)

type state int

const (
	homeState state = iota + 1
	searchState
	listState
	detailState
	playerState
	quitState
)

const (
	searchOption = "Search"
	moviesOption = "Hot movies"
	seriesOption = "Trending series"
)

func (m *mini) handleHomeState() error {
	if _, ok := m.recorder.Latest(view.Movies).(view.Cards); !ok {
		erase := progress("Loading hot content..")
		m.browser.LoadHot(m.ctx)
		erase()
	}

	title("StreamFlix")
	options := []string{searchOption, moviesOption, seriesOption, quitOption}
	i, err := menu("Browse", options)
	if err != nil {
		return err
	}

	switch options[i] {
	case searchOption:
		m.keyword = ""
		m.newState(searchState)
	case moviesOption:
		m.region = view.Movies
		m.newState(listState)
	case seriesOption:
		m.region = view.Series
		m.newState(listState)
	default:
		m.setState(quitState)
	}

	return nil
}

func (m *mini) handleSearchState() error {
	keyword := m.keyword
	m.keyword = ""

	if keyword == "" {
		var err error
		title("Search")
		keyword, err = input("Title", func(s string) []string {
			return query.SuggestMany(s)
		})
		if err != nil {
			return err
		}
	}

	erase := progress("Searching..")
	result := m.browser.Search(m.ctx, keyword)
	erase()

	if result.IsAbsent() {
		info("Type at least two characters to search.")
		m.previousState()
		return nil
	}

	m.region = view.Search
	m.newState(listState)
	return nil
}

// handleListState offers the cards of the current region, or reports its notice.
func (m *mini) handleListState() error {
	ins := m.recorder.Latest(m.region)

	cards, ok := ins.(view.Cards)
	if !ok || len(cards.Cards) == 0 {
		if text := view.Text(ins); text != "" {
			fail(text)
		}
		m.previousState()
		return nil
	}

	heading := lo.Ternary(cards.Heading != "", cards.Heading, lo.Ternary(m.region == view.Series, "Trending Series", "Hot Movies"))
	title(heading)

	options := lo.Map(cards.Cards, func(c view.Card, _ int) string {
		return truncate(fmt.Sprintf("%s %s  %s %s", icon.Get(icon.Movie), c.Title, icon.Get(icon.Star), c.Rating))
	})
	options = append(options, backOption, quitOption)

	i, err := menu("Select a title", options)
	if err != nil {
		return err
	}

	switch options[i] {
	case backOption:
		m.previousState()
	case quitOption:
		m.setState(quitState)
	default:
		m.selected = cards.Cards[i]
		m.newState(detailState)
	}

	return nil
}

func (m *mini) handleDetailState() error {
	erase := progress("Loading details..")
	m.browser.ShowDetail(m.ctx, m.selected)
	erase()

	page, ok := m.recorder.Latest(view.Detail).(view.Page)
	if !ok {
		fail(view.Text(m.recorder.Latest(view.Detail)))
		m.previousState()
		return nil
	}

	printPage(page.Page)

	options := lo.Map(page.Page.Actions, func(a view.Action, _ int) string {
		return a.String()
	})
	options = append(options, quitOption)

	i, err := menu("Action", options)
	if err != nil {
		return err
	}

	if i >= len(page.Page.Actions) {
		m.setState(quitState)
		return nil
	}

	switch page.Page.Actions[i] {
	case view.PlayAction:
		erase := progress(view.StreamPending)
		m.player = m.browser.PlayStream(m.ctx, page.Page.Identity, page.Page.Title)
		erase()
		m.newState(playerState)
	case view.BackAction:
		m.browser.ClearSearch()
		m.statesHistory.Clear()
		m.setState(homeState)
	}

	return nil
}

const (
	startOption = "Play"
	openOption  = "Open link in browser"
)

func (m *mini) handlePlayerState() error {
	printPlayer(m.player)

	if m.player.Link == "" {
		m.browser.ClosePlayer()
		m.previousState()
		return nil
	}

	options := []string{startOption, openOption, backOption, quitOption}
	i, err := menu("Player", options)
	if err != nil {
		return err
	}

	switch options[i] {
	case startOption:
		started, err := m.browser.Start(m.player)
		m.player = started
		if err != nil {
			fail(err.Error())
		}
	case openOption:
		if err := openLink(m.player.Link); err != nil {
			fail(err.Error())
		}
	case backOption:
		m.browser.ClosePlayer()
		m.previousState()
	default:
		m.setState(quitState)
	}

	return nil
}

func printPage(page view.DetailPage) {
	fmt.Println()
	title(page.Title)
	fmt.Println(style.Faint(page.Meta()))
	fmt.Println()
	fmt.Println(page.Synopsis)
	fmt.Println()
	fmt.Println(style.Bold("Cast: ") + page.CastText())
	fmt.Println()
}

func printPlayer(p view.PlayerState) {
	fmt.Println()
	title(p.Heading)

	switch p.Status {
	case view.Unavailable:
		fail(p.Message)
	case view.Manual:
		info(p.Message)
	default:
		fmt.Println(icon.Get(icon.Success) + " " + p.Message)
	}

	if p.Body != "" {
		fmt.Println(p.Body)
	}
	if p.Link != "" {
		fmt.Println(style.Faint(strings.Join([]string{p.MimeType, p.Link}, " ")))
	}
	fmt.Println()
}
