// Package blast implements the bomb: a 4x4 composite of blocks that drifts
// across the board and clears an 8x8 area when something touches it.
package blast

import (
	"slices"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
)

// Size is the bomb's edge length in cells.
const Size = 4

// Radius is how far the blast reaches past the bomb's own box.
const Radius = 2

// cell is one entry of the bomb layout relative to its origin.
type cell struct {
	dx, dy int
	kind   entity.Kind
}

// layout lists the 16 cells, anchor first. Corners blink, the 2x2 core is
// solid and the fillers between them only exist for bookkeeping.
var layout = [Size * Size]cell{
	{0, 0, entity.Blinking}, {0, 3, entity.Blinking}, {3, 0, entity.Blinking}, {3, 3, entity.Blinking},
	{1, 1, entity.Plain}, {1, 2, entity.Plain}, {2, 1, entity.Plain}, {2, 2, entity.Plain},
	{0, 1, entity.Hidden}, {0, 2, entity.Hidden}, {3, 1, entity.Hidden}, {3, 2, entity.Hidden},
	{1, 0, entity.Hidden}, {2, 0, entity.Hidden}, {1, 3, entity.Hidden}, {2, 3, entity.Hidden},
}

// Bomb is one active bomb.
type Bomb struct {
	cells []*entity.Block
	owner *entity.Group
}

// Anchor returns the bomb's origin cell coordinate.
func (b *Bomb) Anchor() core.Point {
	return b.cells[0].Pos
}

// Cells returns the bomb's 16 blocks, anchor first.
func (b *Bomb) Cells() []*entity.Block {
	return b.cells
}

// HitBox is the bomb's own 4x4 box.
func (b *Bomb) HitBox() core.Rect {
	a := b.Anchor()
	return core.NewRect(a.X, a.Y, Size, Size)
}

// BlastBox is the area cleared on detonation.
func (b *Bomb) BlastBox() core.Rect {
	return b.HitBox().Grow(Radius)
}

func (b *Bomb) destroy() {
	for _, c := range b.cells {
		b.owner.Destroy(c)
	}
}

// Arsenal tracks the active bombs of one game, oldest first.
type Arsenal struct {
	bombs []*Bomb
}

// NewArsenal creates an empty arsenal.
func NewArsenal() *Arsenal {
	return &Arsenal{}
}

// Bombs returns the active bombs, oldest first.
func (a *Arsenal) Bombs() []*Bomb {
	return a.bombs
}

// Len returns the number of active bombs.
func (a *Arsenal) Len() int {
	return len(a.bombs)
}

// Reset forgets every bomb without touching the blocks.
func (a *Arsenal) Reset() {
	a.bombs = nil
}

// Spawn builds a bomb anchored at origin and adds its cells to owner.
func (a *Arsenal) Spawn(origin core.Point, owner *entity.Group) *Bomb {
	b := &Bomb{owner: owner, cells: make([]*entity.Block, 0, len(layout))}
	for _, c := range layout {
		b.cells = append(b.cells, owner.Spawn(origin.Add(core.Pt(c.dx, c.dy)), c.kind))
	}
	b.rehide()
	a.bombs = append(a.bombs, b)
	return b
}

// rehide hides the fillers and re-shows the core after the bomb moved.
func (b *Bomb) rehide() {
	for _, c := range b.cells {
		switch c.Kind {
		case entity.Hidden:
			c.Hide()
		case entity.Plain:
			c.Show()
		}
	}
}

// Move drifts every bomb one cell in dir, newest first. A bomb whose anchor
// leaves the board vertically is destroyed.
func (a *Arsenal) Move(dir core.Direction) {
	for i := len(a.bombs) - 1; i >= 0; i-- {
		b := a.bombs[i]
		entity.Shift(b.cells, dir.Offset())
		b.rehide()

		y := b.Anchor().Y
		if (dir == core.DirUp && y < 0) || (dir == core.DirDown && y >= core.GridH-Size+1) {
			b.destroy()
			a.bombs = slices.Delete(a.bombs, i, i+1)
		}
	}
}

// CheckExplosion detonates, newest first, every bomb whose own box touches a
// target. It reports whether anything exploded.
func (a *Arsenal) CheckExplosion(targets *entity.Group) bool {
	exploded := false
	for i := len(a.bombs) - 1; i >= 0; i-- {
		b := a.bombs[i]
		box := b.HitBox()
		if slices.ContainsFunc(targets.Blocks(), func(t *entity.Block) bool { return box.ContainsPoint(t.Pos) }) {
			a.Explode(b, targets)
			exploded = true
		}
	}
	return exploded
}

// Explode destroys every target inside the blast box, then the bomb itself.
// It returns the number of targets destroyed.
func (a *Arsenal) Explode(b *Bomb, targets *entity.Group) int {
	box := b.BlastBox()
	destroyed := 0
	for _, t := range slices.Clone(targets.Blocks()) {
		if box.ContainsPoint(t.Pos) {
			targets.Destroy(t)
			destroyed++
		}
	}

	b.destroy()
	if i := slices.Index(a.bombs, b); i >= 0 {
		a.bombs = slices.Delete(a.bombs, i, i+1)
	}
	return destroyed
}
