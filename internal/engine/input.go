package engine

import "github.com/vovakirdan/tui-brickgame/internal/core"

// InputQueue buffers key events between ticks. Front ends push from their
// event handler and the engine drains it once at the start of every tick;
// both run on the same goroutine.
type InputQueue struct {
	events []core.KeyEvent
}

// Push appends an event.
func (q *InputQueue) Push(ev core.KeyEvent) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *InputQueue) Len() int {
	return len(q.events)
}

// Drain hands every pending event to fn in arrival order and empties the queue.
// Events pushed by fn are kept for the next drain.
func (q *InputQueue) Drain(fn func(core.KeyEvent)) {
	pending := q.events
	q.events = nil
	for _, ev := range pending {
		fn(ev)
	}
}
