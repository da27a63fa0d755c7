package entity

import "github.com/vovakirdan/tui-brickgame/internal/core"

// Sprite is the render handle for one board cell.
type Sprite interface {
	// Raise lights the cell. A non-forced raise of a lit cell does nothing.
	Raise(force bool)
	// Lower darkens a lit cell.
	Lower()
	// Blink raises on the first tick of every second and lowers at the half period.
	Blink(tick int)
}

// Canvas hands out the sprite for an on-grid coordinate.
type Canvas interface {
	Sprite(p core.Point) Sprite
}

// Board is the in-memory Canvas the front ends pull frames from.
// It holds only on/off state; it never paints anything itself.
type Board struct {
	cells [core.GridH][core.GridW]cell
}

type cell struct {
	lit bool
}

// NewBoard creates a dark board.
func NewBoard() *Board {
	return &Board{}
}

// Sprite returns the handle for p. Off-grid coordinates get a no-op sprite.
func (b *Board) Sprite(p core.Point) Sprite {
	if !p.OnGrid() {
		return nopSprite{}
	}
	return &b.cells[p.Y][p.X]
}

// Lit reports whether the cell at p is currently shown.
func (b *Board) Lit(p core.Point) bool {
	if !p.OnGrid() {
		return false
	}
	return b.cells[p.Y][p.X].lit
}

// Snapshot copies the lit state of every cell, indexed [y][x].
func (b *Board) Snapshot() [core.GridH][core.GridW]bool {
	var out [core.GridH][core.GridW]bool
	for y := range b.cells {
		for x := range b.cells[y] {
			out[y][x] = b.cells[y][x].lit
		}
	}
	return out
}

// Count returns the number of lit cells.
func (b *Board) Count() int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].lit {
				n++
			}
		}
	}
	return n
}

// Clear darkens every cell.
func (b *Board) Clear() {
	b.cells = [core.GridH][core.GridW]cell{}
}

func (c *cell) Raise(force bool) {
	if c.lit && !force {
		return
	}
	c.lit = true
}

func (c *cell) Lower() {
	c.lit = false
}

func (c *cell) Blink(tick int) {
	switch tick % core.FPS {
	case 0:
		c.Raise(false)
	case core.FPS / 2:
		c.Lower()
	}
}

type nopSprite struct{}

func (nopSprite) Raise(bool) {}
func (nopSprite) Lower()     {}
func (nopSprite) Blink(int)  {}
