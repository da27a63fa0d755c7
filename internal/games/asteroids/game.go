// Package asteroids implements the Asteroids rule engine: a shooter on the
// bottom row clears falling asteroids, helped by drifting bombs.
package asteroids

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-brickgame/internal/blast"
	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
	"github.com/vovakirdan/tui-brickgame/internal/registry"
)

const (
	groupAsteroids = "asteroids"
	groupBullets   = "bullet"
	groupShooter   = "shooter"
	groupBombs     = "bomb"
)

// PointsPerAsteroid is the reward for each asteroid a bullet destroys.
const PointsPerAsteroid = 5

var shooterStart = core.Pt(4, core.GridH-1)

// Rules implements engine.Rules for Asteroids.
type Rules struct {
	cfg         config.AsteroidsConfig
	ramp        config.Ramp
	arsenal     *blast.Arsenal
	progression bool

	dir     core.Direction // shooter
	elapsed int            // ticks managed since start
}

// New creates Asteroids rules.
func New(cfg config.Config) *Rules {
	return &Rules{
		cfg:         cfg.Asteroids,
		ramp:        cfg.SpawnRamp(),
		arsenal:     blast.NewArsenal(),
		progression: cfg.Difficulty.Progression,
	}
}

func init() {
	registry.Register(core.GameAsteroids, func(cfg config.Config) engine.Rules {
		return New(cfg)
	})
}

// ID returns the game identifier.
func (r *Rules) ID() core.GameID { return core.GameAsteroids }

// Groups returns the entity groups in draw order.
func (r *Rules) Groups() []string {
	return []string{groupAsteroids, groupBullets, groupShooter, groupBombs}
}

// Start places the shooter on an empty sky.
func (r *Rules) Start(g *engine.Game) {
	g.SetSpeed(r.cfg.AsteroidSpeed)
	r.dir = core.DirNull
	r.elapsed = 0
	r.arsenal.Reset()
	g.Group(groupShooter).Spawn(shooterStart, entity.Plain)
}

// Manage moves bullets every tick, asteroids and bombs at the asteroid
// speed, and the shooter at its own speed.
func (r *Rules) Manage(g *engine.Game, tick int) {
	r.elapsed++

	for range r.cfg.BulletSteps {
		r.moveBullets(g)
	}
	if n := r.checkHits(g); n > 0 {
		g.AddScore(PointsPerAsteroid * n)
		g.Cue(core.CueHit)
	}
	g.UpdateScore()

	if tick%core.Every(g.Speed()) == 0 {
		r.moveAsteroids(g)
		r.arsenal.Move(core.DirUp)
		if r.arsenal.CheckExplosion(g.Group(groupAsteroids)) {
			g.Logger().Debug("bomb exploded", "elapsed", r.Elapsed())
			g.Cue(core.CueExplosion)
		}
	}

	if tick%core.Every(r.cfg.ShooterSpeed) == 0 {
		r.shoot(g)
		r.moveShooter(g)
		r.trySpawnBomb(g)
	}
}

// moveBullets advances every bullet one cell up, newest first, dropping the
// ones that leave the board.
func (r *Rules) moveBullets(g *engine.Game) {
	bullets := g.Group(groupBullets)
	blocks := bullets.Blocks()
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		b.Move()
		if b.Pos.Y < 0 {
			bullets.Destroy(b)
		}
	}
}

// checkHits destroys every bullet touching an asteroid in its cell or the
// one just above it, and the asteroids it touched. Each asteroid counts once.
func (r *Rules) checkHits(g *engine.Game) int {
	bullets := g.Group(groupBullets)
	asteroids := g.Group(groupAsteroids)

	hit := make(map[*entity.Block]struct{})
	var order []*entity.Block

	blocks := bullets.Blocks()
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		touched := false
		for _, a := range asteroids.Blocks() {
			if a.Pos.X == b.Pos.X && (a.Pos.Y == b.Pos.Y || a.Pos.Y == b.Pos.Y+1) {
				touched = true
				if _, seen := hit[a]; !seen {
					hit[a] = struct{}{}
					order = append(order, a)
				}
			}
		}
		if touched {
			bullets.Destroy(b)
		}
	}

	for _, a := range order {
		asteroids.Destroy(a)
	}
	return len(order)
}

// moveAsteroids drops every asteroid one row, then seeds the top row.
func (r *Rules) moveAsteroids(g *engine.Game) {
	asteroids := g.Group(groupAsteroids)
	entity.Shift(asteroids.Blocks(), core.DirDown.Offset())

	rate := r.SpawnRate()
	for x := range core.GridW {
		if g.Rand().Float64() < rate {
			asteroids.Spawn(core.Pt(x, 0), entity.Plain)
		}
	}
}

func (r *Rules) shoot(g *engine.Game) {
	shooter := g.Group(groupShooter).First()
	if shooter == nil {
		return
	}
	b := g.Group(groupBullets).Spawn(shooter.Pos.Add(core.DirUp.Offset()), entity.Plain)
	b.Dir = core.DirUp
}

func (r *Rules) moveShooter(g *engine.Game) {
	shooter := g.Group(groupShooter).First()
	if shooter == nil || r.dir == core.DirNull {
		return
	}
	next := shooter.Pos.Add(r.dir.Offset())
	if next.X >= 0 && next.X < core.GridW {
		shooter.MoveTo(next)
	}
}

// trySpawnBomb drops a bomb on the bottom rows with a small chance that
// grows during the first minutes.
func (r *Rules) trySpawnBomb(g *engine.Game) {
	if !r.cfg.Bombs {
		return
	}
	if g.Rand().Float64() >= r.BombRate() {
		return
	}
	x := g.Rand().Intn(core.GridW - blast.Size + 1)
	r.arsenal.Spawn(core.Pt(x, core.GridH-1), g.Group(groupBombs))
	g.Logger().Debug("bomb spawned", "x", x)
}

// BombChance is the per-shooter-step bomb probability after elapsed game time.
func BombChance(elapsed time.Duration) float64 {
	minutes := min(int(elapsed.Minutes()), 3)
	return 1.0/3000 + float64(minutes)/6000
}

// BombRate is the current bomb probability. It stays at the base chance
// when progression is off.
func (r *Rules) BombRate() float64 {
	if !r.progression {
		return BombChance(0)
	}
	return BombChance(r.Elapsed())
}

// SpawnRate is the current per-column asteroid probability.
func (r *Rules) SpawnRate() float64 {
	return r.ramp.Value(r.Elapsed())
}

// Elapsed is the game time since start.
func (r *Rules) Elapsed() time.Duration {
	return time.Duration(r.elapsed) * core.TickInterval
}

// SetKeyBindings steers the shooter.
func (r *Rules) SetKeyBindings(_ *engine.Game, key core.Key, pressed bool) {
	if key != core.KeyLeft && key != core.KeyRight {
		return
	}
	if pressed {
		r.dir = key.Direction()
	} else if r.dir == key.Direction() {
		r.dir = core.DirNull
	}
}

// CheckVictory is always false: Asteroids is played for score.
func (r *Rules) CheckVictory(*engine.Game) bool {
	return false
}

// CheckDefeat reports whether an asteroid hit the shooter or fell past the
// bottom row.
func (r *Rules) CheckDefeat(g *engine.Game) bool {
	shooter := g.Group(groupShooter).First()
	for _, a := range g.Group(groupAsteroids).Blocks() {
		if a.Pos.Y >= core.GridH || (shooter != nil && a.Pos == shooter.Pos) {
			return true
		}
	}
	return false
}

// Details reports game time and active bombs for the HUD.
func (r *Rules) Details() []engine.Detail {
	secs := int(r.Elapsed().Seconds())
	return []engine.Detail{
		{Label: "Time", Value: fmt.Sprintf("%d:%02d", secs/60, secs%60)},
		{Label: "Bombs", Value: strconv.Itoa(r.arsenal.Len())},
	}
}
