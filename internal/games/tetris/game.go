// Package tetris implements the Tetris rule engine: seven tetrominoes with
// fixed rotation tables, a hold/switch slot that doubles as the next-piece
// preview, and a speed that creeps up over time.
package tetris

import (
	"strconv"

	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
	"github.com/vovakirdan/tui-brickgame/internal/registry"
)

const (
	groupPiece  = "piece"
	groupFallen = "fallen"
)

// lineBase is the per-clear reward before the height bonus.
var lineBase = [5]int{0, 2, 6, 12, 20}

// Rules implements engine.Rules for Tetris.
type Rules struct {
	cfg         config.TetrisConfig
	progression bool

	piece  piece
	fallen *entity.Group
	next   Shape // stored shape: spawned next, swapped in by a switch

	dir          core.Direction // held lateral or soft-drop key
	switchLocked bool
	height       int // structure height, 20 minus its topmost row
	blockedOut   bool
	lines        int

	floatSpeed float64
	elapsed    int
}

// New creates Tetris rules.
func New(cfg config.Config) *Rules {
	return &Rules{cfg: cfg.Tetris, progression: cfg.Difficulty.Progression}
}

func init() {
	registry.Register(core.GameTetris, func(cfg config.Config) engine.Rules {
		return New(cfg)
	})
}

// ID returns the game identifier.
func (r *Rules) ID() core.GameID { return core.GameTetris }

// Groups returns the entity groups in draw order.
func (r *Rules) Groups() []string { return []string{groupFallen, groupPiece} }

// Start clears the stored shape and spawns the first piece.
func (r *Rules) Start(g *engine.Game) {
	g.SetSpeed(r.cfg.StartSpeed)
	r.floatSpeed = float64(r.cfg.StartSpeed)
	r.elapsed = 0
	r.next = 0
	r.dir = core.DirNull
	r.height = 0
	r.lines = 0
	r.blockedOut = false

	r.fallen = g.Group(groupFallen)
	r.piece = piece{group: g.Group(groupPiece), fallen: r.fallen}
	r.newPiece(g)
}

// Manage drives the fall, the speed-up and the held-key movement, each on
// its own interval.
func (r *Rules) Manage(g *engine.Game, tick int) {
	r.elapsed++

	if tick%interval(g.Speed()) == 0 {
		r.piece.move(core.DirDown)
		if r.piece.height == 0 {
			r.settle(g)
		}
	}

	if period := r.cfg.SpeedUpSeconds * core.FPS; r.progression && period > 0 && r.elapsed%period == 0 {
		r.speedUp(g)
	}

	if tick%interval(7+3*g.Speed()) == 0 {
		r.piece.move(r.dir)
	}
}

func interval(rate int) int {
	return max(1, core.FPS/max(1, rate))
}

func (r *Rules) speedUp(g *engine.Game) {
	if g.Speed() >= r.cfg.MaxSpeed {
		return
	}
	r.floatSpeed *= r.cfg.SpeedUpFactor
	if s := min(int(r.floatSpeed), r.cfg.MaxSpeed); s > g.Speed() {
		g.SetSpeed(s)
		g.Logger().Debug("speed up", "speed", s)
	}
}

// SetKeyBindings handles rotation, movement, hard drop and the switch.
func (r *Rules) SetKeyBindings(g *engine.Game, key core.Key, pressed bool) {
	if !pressed {
		switch key {
		case core.KeyDown, core.KeyLeft, core.KeyRight:
			if r.dir == key.Direction() {
				r.dir = core.DirNull
			}
		}
		return
	}

	switch key {
	case core.KeyUp:
		r.piece.rotate()
	case core.KeyDown, core.KeyLeft, core.KeyRight:
		r.dir = key.Direction()
	case core.KeyAction:
		r.piece.drop()
		r.settle(g)
	case core.KeyHold:
		if !r.switchLocked {
			r.switchShapes(g)
		}
	}
}

// CheckVictory is always false: Tetris only ends in defeat.
func (r *Rules) CheckVictory(*engine.Game) bool { return false }

// CheckDefeat reports whether the structure outgrew the board or a new piece
// spawned into it.
func (r *Rules) CheckDefeat(*engine.Game) bool {
	return r.height > core.GridH || r.blockedOut
}

// newPiece spawns the stored shape (a random one on the first piece) and
// draws a new stored shape.
func (r *Rules) newPiece(g *engine.Game) {
	active := r.next
	if active == 0 {
		active = randomShape(g)
	}
	r.next = randomShape(g)
	r.spawn(g, active)
	r.switchLocked = false
}

func (r *Rules) spawn(g *engine.Game, s Shape) {
	r.piece.place(s, spawnAt)
	if r.piece.collides() {
		r.blockedOut = true
		g.Logger().Debug("block out", "shape", s)
	}
}

// switchShapes swaps the active and stored shapes and restarts the piece at
// the top. Allowed once per piece.
func (r *Rules) switchShapes(g *engine.Game) {
	active := r.next
	r.next = r.piece.shape
	r.spawn(g, active)
	r.switchLocked = true
}

// settle merges the piece into the structure, clears full rows, scores them
// against the height before the clear and brings in the next piece.
func (r *Rules) settle(g *engine.Game) {
	r.grow()
	lines := r.removeFullLines()
	if lines > 0 {
		r.lines += lines
		g.AddScore(Points(lines, g.Speed(), r.height))
		g.Cue(core.CueLine)
		g.Logger().Debug("lines cleared", "lines", lines, "score", g.Score())
	}
	r.measure()
	g.UpdateScore()
	r.newPiece(g)
}

// grow hands the piece blocks over to the structure and measures it.
func (r *Rules) grow() {
	r.fallen.Add(r.piece.group.Release()...)
	r.measure()
}

func (r *Rules) measure() {
	top := core.GridH
	for _, b := range r.fallen.Blocks() {
		top = min(top, b.Pos.Y)
	}
	r.height = core.GridH - top
}

// removeFullLines clears complete rows top to bottom, lowering everything
// above each cleared row by one.
func (r *Rules) removeFullLines() int {
	n := 0
	for y := range core.GridH {
		var row []*entity.Block
		for _, b := range r.fallen.Blocks() {
			if b.Pos.Y == y {
				row = append(row, b)
			}
		}
		if len(row) != core.GridW {
			continue
		}

		for _, b := range row {
			r.fallen.Destroy(b)
		}
		var above []*entity.Block
		for _, b := range r.fallen.Blocks() {
			if b.Pos.Y < y {
				above = append(above, b)
			}
		}
		entity.Shift(above, core.Pt(0, 1))
		n++
	}
	return n
}

// Points returns the reward for clearing lines at once at the given speed
// with a structure of the given height.
func Points(lines, speed, height int) int {
	if lines <= 0 || lines >= len(lineBase) {
		return 0
	}
	return (lineBase[lines] + speed*height) * 15
}

// Next returns the stored shape.
func (r *Rules) Next() Shape { return r.next }

// Preview renders the stored shape for the HUD.
func (r *Rules) Preview() []string { return r.next.Preview() }

// Details reports the stored shape and the cleared line count.
func (r *Rules) Details() []engine.Detail {
	return []engine.Detail{
		{Label: "Next", Value: r.next.String()},
		{Label: "Lines", Value: strconv.Itoa(r.lines)},
	}
}

func randomShape(g *engine.Game) Shape {
	return AllShapes[g.Rand().Intn(len(AllShapes))]
}
