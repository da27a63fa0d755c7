// Package breakout implements the Breakout rule engine: three brick stages,
// a diagonal ball and a three-cell paddle.
package breakout

import (
	"strconv"

	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
	"github.com/vovakirdan/tui-brickgame/internal/registry"
)

const (
	groupTarget = "target"
	groupBall   = "ball"
	groupPaddle = "paddle"
)

var (
	ballStart   = core.Pt(4, 18)
	paddleStart = core.Pt(3, 19) // leftmost cell
)

// PaddleSize is the paddle width in cells.
const PaddleSize = 3

// Rules implements engine.Rules for Breakout.
type Rules struct {
	cfg config.BreakoutConfig

	level int
	hits  int // bricks destroyed on the current stage

	target *entity.Group
	ball   ball
	paddle paddle

	launching bool // action key held
}

// New creates Breakout rules.
func New(cfg config.Config) *Rules {
	return &Rules{cfg: cfg.Breakout}
}

func init() {
	registry.Register(core.GameBreakout, func(cfg config.Config) engine.Rules {
		return New(cfg)
	})
}

// ID returns the game identifier.
func (r *Rules) ID() core.GameID { return core.GameBreakout }

// Groups returns the entity groups in draw order.
func (r *Rules) Groups() []string { return []string{groupTarget, groupBall, groupPaddle} }

// Start builds stage 1 with the ball resting on the paddle.
func (r *Rules) Start(g *engine.Game) {
	g.SetSpeed(r.cfg.StartSpeed)
	r.level = 1
	r.launching = false
	r.target = g.Group(groupTarget)
	r.buildTarget()
	r.respawn(g)
}

func (r *Rules) buildTarget() {
	r.target.Clear()
	r.hits = 0
	level, ok := GetLevel(r.level)
	if !ok {
		return
	}
	for _, p := range level.Bricks {
		r.target.Spawn(p, entity.Plain)
	}
}

// respawn places a fresh ball and paddle; the ball starts attached.
func (r *Rules) respawn(g *engine.Game) {
	g.Group(groupBall).Clear()
	g.Group(groupPaddle).Clear()

	r.ball = ball{block: g.Group(groupBall).Spawn(ballStart, entity.Plain)}
	r.paddle = paddle{group: g.Group(groupPaddle), ball: &r.ball, attached: true}
	for i := range PaddleSize {
		r.paddle.group.Spawn(paddleStart.Add(core.Pt(i, 0)), entity.Plain)
	}
}

// Manage runs speed/FPS+1 sub-steps whenever the ball's interval comes up.
func (r *Rules) Manage(g *engine.Game, tick int) {
	if tick%core.Every(g.Speed()) != 0 {
		return
	}
	for range g.Speed()/core.FPS + 1 {
		r.step(g)
	}
}

func (r *Rules) step(g *engine.Game) {
	r.ball.move()

	r.hit(g)
	r.manageLevels(g)
	r.ball.borderReflect()

	// a reflected ball may face another brick straight away
	r.hit(g)
	r.manageLevels(g)

	r.paddle.checkDrag()
	r.paddle.checkReflect()
	r.ball.borderReflect()

	r.paddle.move()
	if r.launching && r.paddle.attached && r.hits == 0 {
		r.paddle.launch()
	}
}

// hit resolves the ball against the bricks around it and scores them.
func (r *Rules) hit(g *engine.Game) {
	n := checkHit(r.target, &r.ball)
	if n == 0 {
		return
	}
	r.hits += n
	g.AddScore(n * BrickPoints(r.level))
	g.UpdateScore()
	g.Cue(core.CueHit)
}

// manageLevels advances to the next stage once the target is empty.
func (r *Rules) manageLevels(g *engine.Game) {
	if r.level > Stages || r.target.Len() > 0 {
		return
	}

	g.Logger().Info("stage cleared", "stage", r.level, "score", g.Score())
	r.level++
	g.AddScore(StageBonus(r.level))
	g.Cue(core.CueStage)

	r.buildTarget()
	r.respawn(g)
}

// SetKeyBindings handles the paddle and the boost/launch key.
func (r *Rules) SetKeyBindings(g *engine.Game, key core.Key, pressed bool) {
	switch key {
	case core.KeyAction:
		r.launching = pressed
		if pressed {
			g.SetSpeed(r.cfg.BoostSpeed)
		} else {
			g.SetSpeed(r.cfg.StartSpeed)
		}
	case core.KeyLeft, core.KeyRight:
		if pressed {
			r.paddle.dir = key.Direction()
		} else if r.paddle.dir == key.Direction() {
			r.paddle.dir = core.DirNull
		}
	}
}

// CheckVictory reports whether every stage was cleared.
func (r *Rules) CheckVictory(*engine.Game) bool {
	return r.level > Stages
}

// CheckDefeat reports whether the ball fell past the bottom row.
func (r *Rules) CheckDefeat(*engine.Game) bool {
	return r.ball.block != nil && r.ball.block.Pos.Y >= core.GridH
}

// Level returns the current stage.
func (r *Rules) Level() int { return r.level }

// Details reports the stage and the bricks left for the HUD.
func (r *Rules) Details() []engine.Detail {
	if r.target == nil {
		return nil
	}
	return []engine.Detail{
		{Label: "Level", Value: strconv.Itoa(min(r.level, Stages))},
		{Label: "Bricks", Value: strconv.Itoa(r.target.Len())},
	}
}

// checkHit resolves a ball about to enter brick cells. Px is the cell beside
// the ball in its horizontal direction, Py the one above or below it, and Pxy
// the diagonal. It returns the number of bricks destroyed.
func checkHit(target *entity.Group, b *ball) int {
	pos, v := b.block.Pos, b.v
	px := target.At(core.Pt(pos.X+v.X, pos.Y))
	py := target.At(core.Pt(pos.X, pos.Y+v.Y))
	pxy := target.At(pos.Add(v))

	destroy := func(bricks ...*entity.Block) int {
		n := 0
		for _, brick := range bricks {
			if brick != nil && target.Destroy(brick) {
				n++
			}
		}
		return n
	}

	switch {
	case px != nil && py != nil:
		b.v = core.Pt(-v.X, -v.Y)
		return destroy(px, py, pxy)
	case px != nil:
		b.v.X = -v.X
		return destroy(px)
	case py != nil:
		b.v.Y = -v.Y
		return destroy(py)
	case pxy != nil:
		b.v = core.Pt(-v.X, -v.Y)
		return destroy(pxy)
	}
	return 0
}
