// Package player launches external media players for resolved stream links.
package player

import (
	"fmt"
	"strings"
)

// Player is a playback backend.
type Player interface {
	// Name identifies the backend, e.g. "mpv".
	Name() string

	// Play starts playback of the link. A nil error means the player accepted the link,
	// not that the stream is decodable.
	Play(link, title string) error

	// IsRunning reports whether the backend still has a live process.
	IsRunning() bool

	// Close stops playback and releases the backend's resources.
	Close() error
}

// Backend names accepted by New.
const (
	MPVName    = "mpv"
	IINAName   = "iina"
	SystemName = "open"
)

// Available lists the backend names accepted by New.
func Available() []string {
	return []string{MPVName, IINAName, SystemName}
}

// New returns the backend registered under name. Extra arguments are passed to the process.
func New(name string, args []string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MPVName, "":
		return NewMPV(args), nil
	case IINAName:
		return NewIINA(args), nil
	case SystemName:
		return NewSystem(), nil
	default:
		return nil, fmt.Errorf("unknown player %q, available: %s", name, strings.Join(Available(), ", "))
	}
}
