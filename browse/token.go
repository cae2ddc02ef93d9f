package browse

import (
	"sync"

	"github.com/streamflix-cli/streamflix/view"
)

// token identifies one request against one region.
type token uint64

// tokens hands out monotonically increasing per-region tokens. A response may only
// render while its token is still the latest of its region, so the last triggered
// request wins regardless of completion order.
type tokens struct {
	mu     sync.Mutex
	latest map[view.Region]token
}

func newTokens() *tokens {
	return &tokens{latest: make(map[view.Region]token)}
}

// begin issues a new token for region and runs render while holding the lock,
// so no older response can slip in between issuing and rendering.
func (t *tokens) begin(region view.Region, render func()) token {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.latest[region]++
	if render != nil {
		render()
	}
	return t.latest[region]
}

// commit runs render only if tok is still the latest token of region.
func (t *tokens) commit(region view.Region, tok token, render func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.latest[region] != tok {
		return false
	}
	render()
	return true
}
