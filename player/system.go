package player

import (
	"fmt"

	"github.com/streamflix-cli/streamflix/open"
)

// System opens links with the operating system's default handler.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (System) Name() string {
	return SystemName
}

func (System) Play(link, _ string) error {
	target, err := sanitizeMediaTarget(link)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}
	return open.Start(target)
}

// IsRunning is always false; the handler process is not tracked.
func (System) IsRunning() bool {
	return false
}

func (System) Close() error {
	return nil
}
