package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/streamflix-cli/streamflix/view"
)

// renderMsg carries one render instruction from the browser.
type renderMsg struct {
	region view.Region
	ins    view.Instruction
}

// navigateMsg carries a screen change from the browser.
type navigateMsg view.State

// playbackMsg reports a manual playback attempt.
type playbackMsg struct {
	state view.PlayerState
	err   error
}

// sinks forwards everything the browser renders into the event channel.
func (b *statefulBubble) sinks() *view.Sinks {
	sinks := view.NewSinks().WithNavigator(view.NavigatorFunc(func(s view.State) {
		b.send(navigateMsg(s))
	}))

	for _, region := range view.Regions() {
		region := region
		sinks.With(region, view.SinkFunc(func(ins view.Instruction) {
			b.send(renderMsg{region: region, ins: ins})
		}))
	}

	return sinks
}

// send drops events once the program has exited.
func (b *statefulBubble) send(msg tea.Msg) {
	select {
	case b.events <- msg:
	case <-b.ctx.Done():
	}
}

// waitForEvent delivers the next browser event. Update re-arms it after each one.
func (b *statefulBubble) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.events:
			return msg
		case <-b.ctx.Done():
			return nil
		}
	}
}
