package breakout

import (
	"slices"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
)

// ball moves diagonally one cell per step while free.
type ball struct {
	block  *entity.Block
	v      core.Point
	moving bool
}

func (b *ball) move() {
	if b.moving {
		b.block.MoveBy(b.v)
	}
}

// borderReflect bounces off the side walls and the ceiling.
func (b *ball) borderReflect() {
	p := b.block.Pos
	if (p.X == 0 && b.v.X == -1) || (p.X == core.GridW-1 && b.v.X == 1) {
		b.v.X = -b.v.X
	}
	if p.Y == 0 && b.v.Y == -1 {
		b.v.Y = 1
	}
}

// paddle is the player's bar. While attached the ball rides along with it.
type paddle struct {
	group    *entity.Group
	ball     *ball
	dir      core.Direction
	attached bool
	dragging bool
}

func (p *paddle) cells() []core.Point {
	return entity.Positions(p.group.Blocks())
}

func (p *paddle) left() core.Point {
	return p.group.First().Pos
}

func (p *paddle) right() core.Point {
	return p.group.Last().Pos
}

// move slides the paddle (and an attached ball) one cell if it stays on the board.
func (p *paddle) move() {
	if p.dir == core.DirNull || p.group.Len() == 0 {
		return
	}
	d := p.dir.Offset()
	x := p.left().X + d.X
	if x < 0 || x > core.GridW-p.group.Len() {
		return
	}

	blocks := slices.Clone(p.group.Blocks())
	if p.attached {
		blocks = append(blocks, p.ball.block)
	}
	entity.Shift(blocks, d)
}

// launch releases the ball up and to the right.
func (p *paddle) launch() {
	p.attached = false
	p.dragging = false
	p.ball.moving = true
	p.ball.v = core.Pt(1, -1)
}

// checkDrag toggles dragging when the ball meets the paddle from above. The
// ball rides on the paddle for one step and then carries on.
func (p *paddle) checkDrag() {
	b := p.ball.block.Pos
	below := core.Pt(b.X, b.Y+p.ball.v.Y)
	if !slices.Contains(p.cells(), below) {
		return
	}

	p.dragging = !p.dragging
	p.attached = p.dragging
	p.ball.moving = !p.dragging
}

// checkReflect bounces the ball up off the paddle; the outer cells also set
// the horizontal direction.
func (p *paddle) checkReflect() {
	if p.dragging || p.group.Len() == 0 {
		return
	}
	b, v := p.ball.block.Pos, p.ball.v
	contacts := []core.Point{core.Pt(b.X, b.Y+v.Y), b.Add(v)}

	cells := p.cells()
	if !slices.ContainsFunc(contacts, func(c core.Point) bool { return slices.Contains(cells, c) }) {
		return
	}

	p.ball.v.Y = -1
	switch {
	case slices.Contains(contacts, p.left()):
		p.ball.v.X = -1
	case slices.Contains(contacts, p.right()):
		p.ball.v.X = 1
	}
}
