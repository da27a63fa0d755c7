// Package entity implements the grid entity model: blocks, the sprite
// service they render through, and the world of named block groups each
// game owns.
package entity

import "github.com/vovakirdan/tui-brickgame/internal/core"

// Kind is a block's rendering capability.
type Kind int

const (
	// Plain blocks stay shown until hidden.
	Plain Kind = iota
	// Blinking blocks toggle on a half-second period.
	Blinking
	// Hidden blocks take part in collision and shape bookkeeping but are never drawn.
	Hidden
)

func (k Kind) String() string {
	switch k {
	case Blinking:
		return "blinking"
	case Hidden:
		return "hidden"
	default:
		return "plain"
	}
}

// Block is the atomic movable, drawable grid unit.
type Block struct {
	Pos  core.Point
	Dir  core.Direction // default per-step displacement used by Move
	Kind Kind

	canvas Canvas
}

// New creates a block at the given coordinate and shows it.
func New(c Canvas, at core.Point, kind Kind) *Block {
	b := &Block{Pos: at, Kind: kind, canvas: c}
	b.Show()
	return b
}

func (b *Block) sprite() Sprite {
	if b.canvas == nil || b.Kind == Hidden || !b.Pos.OnGrid() {
		return nil
	}
	return b.canvas.Sprite(b.Pos)
}

// Show lights the block's cell.
func (b *Block) Show() {
	if s := b.sprite(); s != nil {
		s.Raise(true)
	}
}

// Hide darkens the block's cell.
func (b *Block) Hide() {
	if s := b.sprite(); s != nil {
		s.Lower()
	}
}

// Blink advances the blink timer of a Blinking block.
func (b *Block) Blink(tick int) {
	if b.Kind != Blinking {
		return
	}
	if s := b.sprite(); s != nil {
		s.Blink(tick)
	}
}

// MoveTo hides the block, updates its coordinate and shows it again.
func (b *Block) MoveTo(p core.Point) {
	b.Hide()
	b.Pos = p
	b.Show()
}

// Move steps the block one cell in its stored direction.
func (b *Block) Move() {
	b.MoveTo(b.Pos.Add(b.Dir.Offset()))
}

// MoveBy steps the block by d.
func (b *Block) MoveBy(d core.Point) {
	b.MoveTo(b.Pos.Add(d))
}

// Shift translates a set of blocks rigidly: everything is hidden before
// anything is shown, so members landing on each other's old cells stay lit.
func Shift(blocks []*Block, d core.Point) {
	for _, b := range blocks {
		b.Hide()
	}
	for _, b := range blocks {
		b.Pos = b.Pos.Add(d)
	}
	for _, b := range blocks {
		b.Show()
	}
}

// Positions returns the coordinates of blocks in order.
func Positions(blocks []*Block) []core.Point {
	out := make([]core.Point, len(blocks))
	for i, b := range blocks {
		out[i] = b.Pos
	}
	return out
}
