package tetris

import (
	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
)

// spawnAt is the anchor every piece appears at.
var spawnAt = core.Pt(4, 0)

// piece is the falling tetromino. Its blocks live in the piece group; the
// fallen group is only read for collisions.
type piece struct {
	group  *entity.Group
	fallen *entity.Group

	shape  Shape
	anchor core.Point
	state  int
	height int // free rows below the piece, refreshed by dimensions
}

// place replaces the piece blocks with shape in its first orientation.
func (p *piece) place(shape Shape, at core.Point) {
	p.group.Clear()
	p.shape = shape
	p.anchor = at
	p.state = 0
	p.height = core.GridH - 1
	for _, c := range shape.Cells(at, 0) {
		p.group.Spawn(c, entity.Plain)
	}
}

// collides reports whether any piece block overlaps the fallen structure.
func (p *piece) collides() bool {
	for _, b := range p.group.Blocks() {
		if p.fallen.Contains(b.Pos) {
			return true
		}
	}
	return false
}

// dimensions returns the piece's horizontal extent and lowest row, and
// refreshes height: the smallest gap between the piece and whatever lies
// below it in each of its columns. Cells above the board count as row 0.
func (p *piece) dimensions() (xMin, xMax, yMax int) {
	blocks := p.group.Blocks()
	if len(blocks) == 0 {
		p.height = 0
		return 0, 0, 0
	}

	xMin, xMax, yMax = blocks[0].Pos.X, blocks[0].Pos.X, blocks[0].Pos.Y
	for _, b := range blocks[1:] {
		xMin = min(xMin, b.Pos.X)
		xMax = max(xMax, b.Pos.X)
		yMax = max(yMax, b.Pos.Y)
	}

	p.height = core.GridH
	for x := xMin; x <= xMax; x++ {
		bottom := 0
		for _, b := range blocks {
			if b.Pos.X == x {
				bottom = max(bottom, b.Pos.Y)
			}
		}
		gap := core.GridH - 1 - bottom
		for _, f := range p.fallen.Blocks() {
			if f.Pos.X == x && f.Pos.Y > bottom {
				gap = min(gap, f.Pos.Y-bottom-1)
			}
		}
		p.height = min(p.height, gap)
	}
	return xMin, xMax, yMax
}

// move steps the piece one cell unless that would hit the structure, a side
// wall or the floor.
func (p *piece) move(d core.Direction) bool {
	if d == core.DirNull {
		return false
	}
	off := d.Offset()
	xMin, xMax, yMax := p.dimensions()

	for _, b := range p.group.Blocks() {
		if p.fallen.Contains(b.Pos.Add(off)) {
			return false
		}
	}
	if xMin+off.X < 0 || xMax+off.X >= core.GridW || yMax+off.Y >= core.GridH {
		return false
	}

	p.shift(off)
	return true
}

func (p *piece) shift(off core.Point) {
	p.anchor = p.anchor.Add(off)
	entity.Shift(p.group.Blocks(), off)
}

// rotate switches to the next orientation if it fits.
func (p *piece) rotate() bool {
	next := rotations[p.shape][p.state].next
	cells := p.shape.Cells(p.anchor, next)
	for _, c := range cells {
		if c.X < 0 || c.X >= core.GridW || c.Y >= core.GridH || p.fallen.Contains(c) {
			return false
		}
	}

	p.group.Clear()
	for _, c := range cells {
		p.group.Spawn(c, entity.Plain)
	}
	p.state = next
	return true
}

// drop lowers the piece as far as it goes. A second pass covers cells that
// started above the board.
func (p *piece) drop() {
	for range 2 {
		p.dimensions()
		if p.height <= 0 {
			return
		}
		p.shift(core.Pt(0, p.height))
	}
}
