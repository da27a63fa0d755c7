// Package snake implements the Snake rule engine on the 10x20 board.
package snake

import (
	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
	"github.com/vovakirdan/tui-brickgame/internal/registry"
)

const (
	groupBody = "body"
	groupFood = "food"
)

// parked is where the food goes when the body covers the whole board.
var parked = core.Pt(-1, -1)

// Rules implements engine.Rules for Snake. The body group is ordered tail
// first, head last.
type Rules struct {
	cfg config.SnakeConfig

	body   *entity.Group // cached for the HUD
	dir    core.Direction
	locked bool // a direction was accepted since the last move
	grow   bool
}

// New creates Snake rules.
func New(cfg config.Config) *Rules {
	return &Rules{cfg: cfg.Snake}
}

func init() {
	registry.Register(core.GameSnake, func(cfg config.Config) engine.Rules {
		return New(cfg)
	})
}

// ID returns the game identifier.
func (r *Rules) ID() core.GameID { return core.GameSnake }

// Groups returns the entity groups in draw order.
func (r *Rules) Groups() []string { return []string{groupBody, groupFood} }

// Start lays out a three-segment snake heading down and places the food.
func (r *Rules) Start(g *engine.Game) {
	g.SetSpeed(r.cfg.StartSpeed)
	r.dir = core.DirDown
	r.locked = false
	r.grow = false

	body := g.Group(groupBody)
	r.body = body
	for y := 3; y <= 5; y++ {
		body.Spawn(core.Pt(4, y), entity.Plain)
	}

	food := g.Group(groupFood).Spawn(parked, entity.Blinking)
	r.placeFood(g, food)
}

// Manage eats, then advances the snake when its interval comes up. Speeds
// above FPS add bounded catch-up steps.
func (r *Rules) Manage(g *engine.Game, tick int) {
	r.checkEat(g)

	if tick%core.Every(g.Speed()) != 0 {
		return
	}

	g.UpdateScore()
	r.move(g)
	r.locked = false

	for range g.Speed() / core.FPS {
		if r.CheckDefeat(g) {
			break
		}
		r.checkEat(g)
		r.move(g)
	}
}

// SetKeyBindings handles the boost and direction keys.
func (r *Rules) SetKeyBindings(g *engine.Game, key core.Key, pressed bool) {
	if key == core.KeyAction {
		if pressed {
			g.SetSpeed(r.cfg.BoostSpeed)
		} else {
			g.SetSpeed(r.cfg.StartSpeed)
		}
		return
	}

	if !pressed || r.locked {
		return
	}
	d := key.Direction()
	if d == core.DirNull || d == r.dir || d == r.dir.Opposite() {
		return
	}
	r.dir = d
	r.locked = true
}

// CheckVictory reports whether the snake reached the winning length.
func (r *Rules) CheckVictory(g *engine.Game) bool {
	return g.Group(groupBody).Len() >= r.cfg.WinLength
}

// CheckDefeat reports whether the head left the board or bit the body.
func (r *Rules) CheckDefeat(g *engine.Game) bool {
	body := g.Group(groupBody).Blocks()
	if len(body) == 0 {
		return false
	}
	head := body[len(body)-1].Pos
	if !head.OnGrid() {
		return true
	}
	for _, b := range body[:len(body)-1] {
		if b.Pos == head {
			return true
		}
	}
	return false
}

// move drops the tail unless growing, then appends the new head.
func (r *Rules) move(g *engine.Game) {
	body := g.Group(groupBody)
	head := body.Last()
	if head == nil {
		return
	}
	next := head.Pos.Add(r.dir.Offset())

	if r.grow {
		r.grow = false
	} else {
		body.Destroy(body.First())
	}
	body.Spawn(next, entity.Plain)
}

func (r *Rules) checkEat(g *engine.Game) {
	body := g.Group(groupBody)
	food := g.Group(groupFood).First()
	head := body.Last()
	if food == nil || head == nil || head.Pos != food.Pos {
		return
	}

	r.grow = true
	g.AddScore(Points(body.Len()))
	g.Cue(core.CueEat)
	r.placeFood(g, food)
}

// placeFood moves the food to a uniformly random cell outside the body, or
// parks it off the board when none is free.
func (r *Rules) placeFood(g *engine.Game, food *entity.Block) {
	body := g.Group(groupBody)
	free := make([]core.Point, 0, core.GridW*core.GridH)
	for y := range core.GridH {
		for x := range core.GridW {
			p := core.Pt(x, y)
			if !body.Contains(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		food.MoveTo(parked)
		return
	}
	food.MoveTo(free[g.Rand().Intn(len(free))])
}

// Points returns the reward for eating at body length n. The first tier
// starts at the initial length of 3, so the first food already scores.
func Points(n int) int {
	switch {
	case n <= 25:
		return 15
	case n <= 50:
		return 45
	case n <= 100:
		return 100
	default:
		return 250
	}
}
