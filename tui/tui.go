// Package tui is the full-screen terminal shell.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/streamflix-cli/streamflix/browse"
)

// Options configures the terminal shell.
type Options struct {
	// Keyword is searched on start when set.
	Keyword string
}

// Run starts the program and blocks until the user quits.
func Run(options *Options) error {
	bubble := newBubble(options)
	defer bubble.cancel()

	browser, err := browse.Configured(bubble.sinks())
	if err != nil {
		return err
	}
	defer browser.Close()

	bubble.browser = browser

	_, err = tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
