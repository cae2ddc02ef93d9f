package view

import (
	"fmt"

	"github.com/streamflix-cli/streamflix/source"
)

// PlayerStatus is the phase of the player overlay.
type PlayerStatus int

const (
	// Fetching means the stream link is still being resolved.
	Fetching PlayerStatus = iota + 1
	// Ready means a link was found and handed to the player.
	Ready
	// Manual means a link was found but playback did not start on its own.
	Manual
	// Unavailable means no link could be resolved.
	Unavailable
)

func (s PlayerStatus) String() string {
	switch s {
	case Fetching:
		return "fetching"
	case Ready:
		return "ready"
	case Manual:
		return "manual"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status by name.
func (s PlayerStatus) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// PlayerState is the content of the player overlay.
type PlayerState struct {
	Status PlayerStatus `json:"status"`

	// Heading is the "Now Playing" line.
	Heading string `json:"heading"`

	// Message is the status line under the heading.
	Message string `json:"message"`

	// Body replaces the player surface when there is nothing to play.
	Body string `json:"body,omitempty"`

	Title    string `json:"title"`
	Link     string `json:"link,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// FetchingPlayer is shown before the stream request is issued.
func FetchingPlayer(title string) PlayerState {
	return PlayerState{
		Status:  Fetching,
		Heading: fmt.Sprintf(NowPlayingFormat, title),
		Message: StreamPending,
		Body:    LoadingStream,
		Title:   title,
	}
}

// StreamOutcome renders a normalized stream resolution for title.
func StreamOutcome(r source.StreamResult, title string) PlayerState {
	state := PlayerState{
		Status:  Unavailable,
		Heading: fmt.Sprintf(NowPlayingFormat, title),
		Title:   title,
	}

	switch r.Kind {
	case source.Success:
		display := firstNonEmpty(title, MediaContent)
		state.Status = Ready
		state.Heading = fmt.Sprintf(NowPlayingFormat, display)
		state.Title = display
		state.Message = StreamFound
		state.Link = r.Resource.Link()
		state.MimeType = r.Resource.MimeType()
	case source.LinkMissing:
		state.Message = LinkMissingText
		state.Body = LinkMissingBody
	case source.APIError:
		state.Message = fmt.Sprintf(APIErrorFormat, r.Message)
		state.Body = APIErrorBody
	case source.NotFound:
		state.Message = fmt.Sprintf(NotFoundFormat, r.Message)
		state.Body = fmt.Sprintf(NotFoundBody, title)
	case source.UnknownShape, source.Empty:
		state.Message = UnknownText
		state.Body = UnknownBody
	default:
		state.Message = NetworkText
		state.Body = NetworkBody
	}

	return state
}

// PlaybackFailed marks a ready overlay as needing a manual start. The link is kept.
func PlaybackFailed(state PlayerState) PlayerState {
	state.Status = Manual
	state.Message = AutoplayFailed
	return state
}

// AwaitingStart marks a ready overlay whose playback is left to the user.
func AwaitingStart(state PlayerState) PlayerState {
	state.Status = Manual
	state.Message = StreamReady
	return state
}

// Started marks an overlay whose link was accepted by a player.
func Started(state PlayerState) PlayerState {
	state.Status = Ready
	state.Message = StreamFound
	return state
}
