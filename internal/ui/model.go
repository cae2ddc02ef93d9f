// Package ui holds small bubbletea components shared by the terminal shells.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// NotificationLifetime is how long a notification stays on screen.
const NotificationLifetime = 3 * time.Second

// Model shows one transient status line appended to the last line of a view.
type Model struct {
	notification string
	notifiedAt   time.Time
	style        lipgloss.Style
}

// New creates a notifier rendering with the given foreground.
func New(fg lipgloss.Color) *Model {
	return &Model{style: lipgloss.NewStyle().Foreground(fg)}
}

// NotificationMsg replaces the current notification.
type NotificationMsg string

// ClearNotificationMsg clears notifications older than its timestamp.
type ClearNotificationMsg struct {
	at time.Time
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

func clearAfter(at time.Time) tea.Cmd {
	return tea.Tick(NotificationLifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: at}
	})
}

// Update handles notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		// A newer notification keeps its own timer.
		if !msg.at.Before(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the visible notification, if any.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + m.style.Render(m.notification)
	return strings.Join(lines, "\n")
}
