package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/color"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/style"
	"github.com/streamflix-cli/streamflix/view"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case errorState:
		output = b.viewError()
	case playerState:
		output = b.viewPlayer()
	default:
		switch b.screen.Screen {
		case view.SearchResults:
			output = b.viewResults()
		case view.DetailScreen:
			output = b.viewDetail()
		default:
			output = b.viewHome()
		}
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewSearchBar() string {
	input := b.inputC.View()
	if suggestion, ok := b.searchSuggestion.Get(); ok && b.typing {
		input += " " + style.Faint(icon.Get(icon.Search)+" "+suggestion)
	}
	return paddingStyle.PaddingBottom(0).Render(input)
}

func (b *statefulBubble) viewRegion(region view.Region, width int) string {
	listC := b.lists()[region]

	notice, ok := b.notices[region]
	if !ok || notice == "" {
		return listExtraPaddingStyle.Render(listC.View())
	}

	text := notice
	if b.loading[region] {
		text = b.spinnerC.View() + " " + text
	}

	lines := []string{
		listC.Styles.Title.Render(listC.Title),
		"",
		wordwrap.String(text, lo.Max([]int{width - 4, 10})),
	}
	return listExtraPaddingStyle.PaddingLeft(2).Width(width).Render(strings.Join(lines, "\n"))
}

func (b *statefulBubble) viewHome() string {
	half := b.width / 2

	movies := b.viewRegion(view.Movies, half)
	series := b.viewRegion(view.Series, b.width-half)

	if b.focus == view.Series {
		series = lipgloss.NewStyle().Bold(true).Render(series)
	} else {
		movies = lipgloss.NewStyle().Bold(true).Render(movies)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		b.viewSearchBar(),
		lipgloss.JoinHorizontal(lipgloss.Top, movies, series),
		paddingStyle.PaddingTop(0).Render(b.helpC.View(b.keymap)),
	)
}

func (b *statefulBubble) viewResults() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		b.viewSearchBar(),
		b.viewRegion(view.Search, b.width),
		paddingStyle.PaddingTop(0).Render(b.helpC.View(b.keymap)),
	)
}

func (b *statefulBubble) viewDetail() string {
	if _, ok := b.page.Get(); !ok {
		text := b.notices[view.Detail]
		if b.loading[view.Detail] {
			text = b.spinnerC.View() + " " + text
		}

		return b.renderLines(true, []string{
			style.Title(b.selected.Title),
			"",
			wordwrap.String(text, b.width),
		})
	}

	return paddingStyle.Render(b.detailC.View() + "\n" + b.helpC.View(b.keymap))
}

// renderPage lays out a detail page for the viewport.
func (b *statefulBubble) renderPage(page view.DetailPage) string {
	width := lo.Max([]int{b.width, 20})

	lines := []string{
		style.Title(page.Title),
		"",
		style.Fg(color.Orange)(icon.Get(icon.Star)) + " " + page.Meta(),
		"",
		wordwrap.String(page.Synopsis, width),
		"",
		style.Bold("Cast: ") + wordwrap.String(page.CastText(), width),
	}

	if viper.GetBool(key.TUIShowURLs) && page.Poster != view.PlaceholderCover {
		lines = append(lines, "", style.Faint(wrap.String(page.Poster, width)))
	}

	actions := lo.Map(page.Actions, func(a view.Action, _ int) string {
		binding := lo.Ternary(a == view.PlayAction, b.keymap.play, b.keymap.back)
		return style.Tag(style.Base, style.AccentColor)(binding.Help().Key) + " " + a.String()
	})
	lines = append(lines, "", strings.Join(actions, "   "))

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewPlayer() string {
	p := b.player

	statusColor := lo.Switch[view.PlayerStatus, lipgloss.Color](p.Status).
		Case(view.Ready, style.SuccessColor).
		Case(view.Manual, style.WarningColor).
		Case(view.Unavailable, style.ErrorColor).
		Default(style.Subtext)

	message := lipgloss.NewStyle().Foreground(statusColor).Render(p.Message)
	if p.Status == view.Fetching {
		message = b.spinnerC.View() + " " + message
	}

	lines := []string{
		style.Title(icon.Get(icon.Play) + " " + p.Heading),
		"",
		wordwrap.String(message, b.width),
	}

	if p.Body != "" {
		lines = append(lines, "", wordwrap.String(p.Body, b.width))
	}

	if p.Link != "" {
		lines = append(lines,
			"",
			style.Faint(fmt.Sprintf("%s %s", icon.Get(icon.Link), p.MimeType)),
			style.Faint(wrap.String(p.Link, b.width)),
		)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)

	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
