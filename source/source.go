// Package source defines the content domain models, the provider interface and the response normalizers.
package source

import (
	"context"
	"fmt"
)

// Source is a content backend. Implementations return the raw response and never interpret it;
// the Parse functions of this package do.
type Source interface {
	// Name is the human readable provider name.
	Name() string

	// ID uniquely identifies the provider.
	ID() string

	// Hot lists hot movies and trending series.
	Hot(ctx context.Context) (*Envelope, error)

	// Search looks up titles by keyword. The keyword is passed as typed; encoding is the provider's job.
	Search(ctx context.Context, keyword string) (*Envelope, error)

	// Details loads the detail record of one title.
	Details(ctx context.Context, id Identity) (*Envelope, error)

	// Media resolves a playable stream of one title.
	Media(ctx context.Context, id Identity) (*Envelope, error)
}

// Envelope is a raw provider response.
type Envelope struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (e *Envelope) OK() bool {
	return e.StatusCode >= 200 && e.StatusCode < 300
}

// StatusError reports a non-2xx response where one is not accepted.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! Status: %d", e.Code)
}
