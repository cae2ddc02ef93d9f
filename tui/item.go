package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/icon"
	"github.com/streamflix-cli/streamflix/key"
	"github.com/streamflix-cli/streamflix/style"
	"github.com/streamflix-cli/streamflix/view"
)

// listItem adapts a card to list.Item.
type listItem struct {
	card view.Card
	kind icon.Icon
}

func (t *listItem) Title() string {
	if i := icon.Get(t.kind); i != "" {
		return i + " " + t.card.Title
	}
	return t.card.Title
}

func (t *listItem) Description() string {
	parts := []string{
		lipgloss.NewStyle().Foreground(style.Yellow).Render(icon.Get(icon.Star) + " " + t.card.Rating),
	}

	if viper.GetBool(key.TUIShowURLs) && t.card.HasCover() {
		parts = append(parts, style.Faint(t.card.Cover))
	}

	return strings.Join(parts, " • ")
}

func (t *listItem) FilterValue() string {
	return t.card.Title
}
