// Package session holds the front-end pieces shared by the terminal backends:
// key-hold synthesis and recording of finished runs.
package session

import (
	"time"

	"github.com/vovakirdan/tui-brickgame/internal/core"
)

// DefaultHoldTimeout is how long a key stays down after its last repeat.
const DefaultHoldTimeout = 180 * time.Millisecond

// HoldTracker synthesizes key releases. Terminals only report presses, and a
// held key shows up as a stream of auto-repeated presses; once the repeats
// stop for longer than the timeout the key counts as released.
type HoldTracker struct {
	timeout time.Duration
	held    map[core.Key]time.Time
}

// NewHoldTracker creates a tracker with the given repeat timeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = DefaultHoldTimeout
	}
	return &HoldTracker{timeout: timeout, held: make(map[core.Key]time.Time)}
}

// Press records a press (or auto-repeat) of k at now.
func (h *HoldTracker) Press(k core.Key, now time.Time) {
	if k == core.KeyNone {
		return
	}
	h.held[k] = now
}

// Held reports whether k is currently considered down.
func (h *HoldTracker) Held(k core.Key) bool {
	_, ok := h.held[k]
	return ok
}

// Expire returns a release event for every key not repeated within the
// timeout, in key order.
func (h *HoldTracker) Expire(now time.Time) []core.KeyEvent {
	var out []core.KeyEvent
	for k := core.KeyUp; k <= core.KeyReset; k++ {
		last, ok := h.held[k]
		if !ok || now.Sub(last) < h.timeout {
			continue
		}
		delete(h.held, k)
		out = append(out, core.Release(k))
	}
	return out
}

// ReleaseAll releases every held key, e.g. when leaving a game.
func (h *HoldTracker) ReleaseAll() []core.KeyEvent {
	var out []core.KeyEvent
	for k := core.KeyUp; k <= core.KeyReset; k++ {
		if _, ok := h.held[k]; ok {
			out = append(out, core.Release(k))
		}
	}
	clear(h.held)
	return out
}
