// Package engine implements the game lifecycle state machine shared by all
// rule engines: start, tick-driven update, pause, reset, victory, defeat and
// high-score bookkeeping.
package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
)

// MaxScore is the largest score the record can hold.
const MaxScore = 100_000_000 - 1

// State is the lifecycle state. Pausing is tracked separately and only
// applies while Running.
type State int

const (
	Stopped State = iota
	Running
	Victory
	Defeat
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "stopped"
	}
}

// Options wires a Game to its collaborators. Every field is optional.
type Options struct {
	Canvas  entity.Canvas // defaults to a fresh Board
	Scores  ScoreStore
	Screens EndScreen
	Sounds  SoundPlayer
	Logger  *log.Logger
	Seed    int64 // 0 means time based
}

// Game is one hosted game: the rule engine plus its world and lifecycle.
type Game struct {
	rules   Rules
	world   *entity.World
	canvas  entity.Canvas
	scores  ScoreStore
	screens EndScreen
	sounds  SoundPlayer
	logger  *log.Logger
	rng     *rand.Rand
	input   InputQueue

	state  State
	paused bool
	score  int
	speed  int
	tick   int

	high       int
	highLoaded bool
}

// New creates a stopped game.
func New(rules Rules, opts Options) *Game {
	if opts.Canvas == nil {
		opts.Canvas = entity.NewBoard()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	return &Game{
		rules:   rules,
		world:   entity.NewWorld(opts.Canvas, rules.Groups()...),
		canvas:  opts.Canvas,
		scores:  opts.Scores,
		screens: opts.Screens,
		sounds:  opts.Sounds,
		logger:  opts.Logger.With("game", rules.ID().String()),
		rng:     rand.New(rand.NewSource(opts.Seed)),
	}
}

// ID returns the game identifier.
func (g *Game) ID() core.GameID { return g.rules.ID() }

// Rules returns the rule engine.
func (g *Game) Rules() Rules { return g.rules }

// World returns the entity groups.
func (g *Game) World() *entity.World { return g.world }

// Group is shorthand for World().Group(name).
func (g *Game) Group(name string) *entity.Group { return g.world.Group(name) }

// Canvas returns the sprite service.
func (g *Game) Canvas() entity.Canvas { return g.canvas }

// Rand returns the game's random source.
func (g *Game) Rand() *rand.Rand { return g.rng }

// Logger returns the game's logger.
func (g *Game) Logger() *log.Logger { return g.logger }

// Input returns the queue front ends push key events into.
func (g *Game) Input() *InputQueue { return &g.input }

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// Running reports whether the game is in the Running state, paused or not.
func (g *Game) Running() bool { return g.state == Running }

// Paused reports whether a running game is paused.
func (g *Game) Paused() bool { return g.paused }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// AddScore adds n points.
func (g *Game) AddScore(n int) { g.score += n }

// Speed returns the current speed in cells per second.
func (g *Game) Speed() int { return g.speed }

// SetSpeed sets the speed in cells per second.
func (g *Game) SetSpeed(speed int) { g.speed = speed }

// HighScore returns the best known score, including the current run.
func (g *Game) HighScore() int { return max(g.high, g.score) }

// Ticks returns the number of ticks driven through Tick.
func (g *Game) Ticks() int { return g.tick }

// Cue plays a sound effect if a player is attached.
func (g *Game) Cue(c core.Cue) {
	if g.sounds != nil {
		g.sounds.Play(c)
	}
}

// Start zeroes the score, enters Running and lets the rules spawn entities.
func (g *Game) Start() {
	g.score = 0
	g.speed = 1
	g.paused = false
	g.state = Running
	if !g.highLoaded {
		g.loadHighScore()
	}

	g.rules.Start(g)

	g.world.Each(func(b *entity.Block) {
		if b.Kind == entity.Plain {
			b.Show()
		}
	})
	g.logger.Debug("game started")
}

// Reset clears every entity group and starts over.
func (g *Game) Reset() {
	g.state = Stopped
	g.world.ClearAll()
	g.Start()
}

// Manage runs one tick of rules while running and unpaused, then checks
// for victory and defeat.
func (g *Game) Manage(tick int) {
	if g.state != Running || g.paused {
		return
	}

	g.rules.Manage(g, tick)

	switch {
	case g.rules.CheckVictory(g):
		g.finish(Victory)
	case g.rules.CheckDefeat(g):
		g.finish(Defeat)
	}
}

func (g *Game) finish(s State) {
	g.UpdateScore()
	g.world.ClearAll()
	g.state = s
	g.logger.Info("game finished", "result", s, "score", g.score, "high", g.HighScore())

	switch s {
	case Victory:
		g.Cue(core.CueVictory)
		if g.screens != nil {
			g.screens.ShowVictory()
		}
	case Defeat:
		g.Cue(core.CueDefeat)
		if g.screens != nil {
			g.screens.ShowDefeat()
		}
	}
}

// Update advances blink timers unless paused.
func (g *Game) Update(tick int) {
	if g.paused {
		return
	}
	g.world.Each(func(b *entity.Block) {
		b.Blink(tick)
	})
}

// DrawEntities re-applies every block's visibility while running and forced:
// hidden blocks are hidden and still plain blocks shown. Blinking blocks are
// left to their timer.
func (g *Game) DrawEntities(force bool) {
	if g.state != Running || !force {
		return
	}
	g.world.Each(func(b *entity.Block) {
		switch {
		case b.Kind == entity.Hidden:
			b.Hide()
		case b.Kind == entity.Plain && b.Dir == core.DirNull:
			b.Show()
		}
	})
}

// Draw is DrawEntities(!Paused()).
func (g *Game) Draw() {
	g.DrawEntities(!g.paused)
}

// SetKeyBindings handles pause and reset, and forwards the rest to the rules.
// Events are ignored while stopped; after the game ended only reset works.
func (g *Game) SetKeyBindings(key core.Key, pressed bool) {
	if g.state == Stopped {
		return
	}

	if pressed {
		switch key {
		case core.KeyPause:
			if g.state == Running {
				g.paused = !g.paused
				if g.paused {
					g.logger.Info("game paused")
				} else {
					g.logger.Info("game unpaused")
				}
			}
			return
		case core.KeyReset:
			g.Reset()
			return
		}
	}

	if g.state != Running || (g.paused && pressed) {
		return
	}
	g.rules.SetKeyBindings(g, key, pressed)
}

// UpdateScore raises the persisted high score when the current score beats it.
// Store failures are logged and never interrupt play.
func (g *Game) UpdateScore() {
	if !g.highLoaded {
		g.loadHighScore()
	}
	if g.score <= g.high {
		return
	}
	if g.score > MaxScore {
		g.score = MaxScore
	}
	g.high = g.score

	if g.scores == nil {
		return
	}
	if err := g.scores.WriteHighScore(g.rules.ID(), g.high); err != nil {
		g.logger.Warn("could not write high score", "error", err)
	}
}

// loadHighScore reads the record once per session. A failed read counts as a
// zero record so the store is not polled again every tick.
func (g *Game) loadHighScore() {
	g.highLoaded = true
	g.high = 0
	if g.scores == nil {
		return
	}
	high, err := g.scores.ReadHighScore(g.rules.ID())
	if err != nil {
		g.logger.Warn("could not read high score", "error", err)
		return
	}
	g.high = max(high, 0)
}

// Tick runs one full cycle: drain input, manage, draw, blink.
func (g *Game) Tick() {
	g.input.Drain(func(ev core.KeyEvent) {
		g.SetKeyBindings(ev.Key, ev.Pressed)
	})
	t := g.tick
	g.tick++
	g.Manage(t)
	g.Draw()
	g.Update(t)
}

// Status is a read-only summary for HUDs.
type Status struct {
	Game    core.GameID
	State   State
	Paused  bool
	Score   int
	High    int
	Speed   int
	Details []Detail
}

// Status returns the current summary.
func (g *Game) Status() Status {
	st := Status{
		Game:   g.rules.ID(),
		State:  g.state,
		Paused: g.paused,
		Score:  g.score,
		High:   g.HighScore(),
		Speed:  g.speed,
	}
	if r, ok := g.rules.(Reporter); ok {
		st.Details = r.Details()
	}
	return st
}
