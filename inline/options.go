package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/streamflix-cli/streamflix/source"
)

// Command is the fetch an inline run performs.
type Command int

const (
	Hot Command = iota + 1
	Search
	Detail
	Stream
)

func (c Command) String() string {
	switch c {
	case Hot:
		return "hot"
	case Search:
		return "search"
	case Detail:
		return "detail"
	case Stream:
		return "stream"
	default:
		return "unknown"
	}
}

// ParseCommand resolves a command by name.
func ParseCommand(name string) (Command, error) {
	for _, c := range []Command{Hot, Search, Detail, Stream} {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command: %s", name)
}

type Options struct {
	Out    io.Writer
	Source source.Source
	Json   bool

	Command Command

	// Query is the search keyword.
	Query string

	// Identity selects the title for Detail and Stream.
	Identity source.Identity

	// Title labels the player overlay and is the detail fallback title.
	Title string
}

func (o *Options) validate() error {
	if o.Source == nil {
		return fmt.Errorf("source not set")
	}

	switch o.Command {
	case Search:
		if strings.TrimSpace(o.Query) == "" {
			return fmt.Errorf("query is required for %s", o.Command)
		}
	case Detail, Stream:
		if !o.Identity.Valid() {
			return fmt.Errorf("both id and detail path are required for %s", o.Command)
		}
	case Hot:
	default:
		return fmt.Errorf("unknown command: %d", o.Command)
	}

	return nil
}
