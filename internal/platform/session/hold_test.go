package session

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-brickgame/internal/core"
)

func TestHoldTrackerExpire(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.KeyLeft, t0)
	h.Press(core.KeyAction, t0.Add(50*time.Millisecond))
	h.Press(core.KeyNone, t0)

	if evs := h.Expire(t0.Add(99 * time.Millisecond)); len(evs) != 0 {
		t.Fatalf("Expire() = %v before the timeout, expected none", evs)
	}

	// A repeat keeps the key down.
	h.Press(core.KeyLeft, t0.Add(90*time.Millisecond))
	evs := h.Expire(t0.Add(160 * time.Millisecond))
	if len(evs) != 1 || evs[0] != core.Release(core.KeyAction) {
		t.Fatalf("Expire() = %v, expected the action release only", evs)
	}
	if !h.Held(core.KeyLeft) || h.Held(core.KeyAction) {
		t.Error("left should still be held and action released")
	}

	evs = h.Expire(t0.Add(time.Second))
	if len(evs) != 1 || evs[0] != core.Release(core.KeyLeft) {
		t.Errorf("Expire() = %v, expected the left release", evs)
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Unix(0, 0)
	h.Press(core.KeyRight, now)
	h.Press(core.KeyUp, now)

	evs := h.ReleaseAll()
	expected := []core.KeyEvent{core.Release(core.KeyUp), core.Release(core.KeyRight)}
	if len(evs) != len(expected) {
		t.Fatalf("ReleaseAll() = %v, expected %v", evs, expected)
	}
	for i := range expected {
		if evs[i] != expected[i] {
			t.Errorf("ReleaseAll()[%d] = %v, expected %v", i, evs[i], expected[i])
		}
	}
	if h.Held(core.KeyUp) {
		t.Error("keys should be cleared after ReleaseAll")
	}
}
