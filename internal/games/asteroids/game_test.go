package asteroids

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
)

// newGame starts a game with an empty sky: no random asteroids, no bombs.
func newGame(t *testing.T, mut func(*config.Config)) (*engine.Game, *Rules) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Asteroids.SpawnStart = 0
	cfg.Asteroids.SpawnMax = 0
	cfg.Asteroids.Bombs = false
	if mut != nil {
		mut(&cfg)
	}
	r := New(cfg)
	g := engine.New(r, engine.Options{Canvas: entity.NewBoard(), Seed: 5})
	g.Start()
	return g, r
}

func spawn(g *engine.Game, group string, pts ...core.Point) {
	for _, p := range pts {
		b := g.Group(group).Spawn(p, entity.Plain)
		if group == groupBullets {
			b.Dir = core.DirUp
		}
	}
}

func TestStart(t *testing.T) {
	g, _ := newGame(t, nil)

	if g.Speed() != 2 {
		t.Errorf("Speed() = %d, expected asteroid speed 2", g.Speed())
	}
	shooter := g.Group(groupShooter).First()
	if shooter == nil || shooter.Pos != core.Pt(4, 19) {
		t.Fatalf("shooter = %v, expected (4,19)", shooter)
	}
	if g.World().Len() != 1 {
		t.Errorf("World().Len() = %d, expected only the shooter", g.World().Len())
	}
}

func TestShootAndBulletTravel(t *testing.T) {
	g, _ := newGame(t, nil)

	g.Manage(0)
	bullets := g.Group(groupBullets)
	if bullets.Len() != 1 || bullets.First().Pos != core.Pt(4, 18) {
		t.Fatalf("bullets = %v, expected one at (4,18)", entity.Positions(bullets.Blocks()))
	}

	g.Manage(1)
	if p := bullets.First().Pos; p != core.Pt(4, 16) {
		t.Errorf("bullet = %v, expected two cells per tick", p)
	}
}

func TestBulletsLeaveTheBoard(t *testing.T) {
	g, r := newGame(t, nil)
	spawn(g, groupBullets, core.Pt(2, 0), core.Pt(3, 5))

	r.moveBullets(g)
	bullets := g.Group(groupBullets)
	if bullets.Len() != 1 || bullets.First().Pos != core.Pt(3, 4) {
		t.Errorf("bullets = %v, expected only (3,4)", entity.Positions(bullets.Blocks()))
	}
}

func TestBulletHitsTwoCellWindow(t *testing.T) {
	g, _ := newGame(t, nil)
	g.Manage(0) // bullet at (4,18)
	spawn(g, groupAsteroids, core.Pt(4, 16), core.Pt(4, 17), core.Pt(4, 15))

	g.Manage(1) // bullet moves to (4,16)

	if g.Score() != 2*PointsPerAsteroid {
		t.Errorf("Score() = %d, expected %d", g.Score(), 2*PointsPerAsteroid)
	}
	if g.Group(groupBullets).Len() != 0 {
		t.Error("bullet should be destroyed on impact")
	}
	left := entity.Positions(g.Group(groupAsteroids).Blocks())
	if len(left) != 1 || left[0] != core.Pt(4, 15) {
		t.Errorf("asteroids = %v, expected only (4,15)", left)
	}
}

func TestAsteroidCountsOnce(t *testing.T) {
	g, r := newGame(t, nil)
	spawn(g, groupBullets, core.Pt(4, 10), core.Pt(4, 11))
	spawn(g, groupAsteroids, core.Pt(4, 11))

	if n := r.checkHits(g); n != 1 {
		t.Errorf("checkHits() = %d, expected the shared asteroid once", n)
	}
	if g.Group(groupBullets).Len() != 0 || g.Group(groupAsteroids).Len() != 0 {
		t.Error("both bullets and the asteroid should be gone")
	}
}

func TestDefeat(t *testing.T) {
	tests := []struct {
		name     string
		asteroid core.Point
	}{
		{"hits the shooter", core.Pt(4, 18)},
		{"falls past the bottom", core.Pt(0, 19)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newGame(t, nil)
			spawn(g, groupAsteroids, tc.asteroid)

			g.Manage(0)
			if g.State() != engine.Defeat {
				t.Errorf("State() = %v, expected defeat", g.State())
			}
		})
	}
}

func TestSpawnEveryColumn(t *testing.T) {
	g, _ := newGame(t, func(c *config.Config) {
		c.Asteroids.SpawnStart = 1
		c.Asteroids.SpawnMax = 1
	})

	g.Manage(0)
	asteroids := g.Group(groupAsteroids)
	if asteroids.Len() != core.GridW {
		t.Fatalf("spawned %d asteroids, expected %d", asteroids.Len(), core.GridW)
	}
	for _, a := range asteroids.Blocks() {
		if a.Pos.Y != 0 {
			t.Errorf("asteroid spawned at %v, expected the top row", a.Pos)
		}
	}

	// Off-interval ticks leave them in place.
	g.Manage(1)
	if asteroids.First().Pos.Y != 0 {
		t.Error("asteroids moved off their interval")
	}
}

func TestSpawnRateRamps(t *testing.T) {
	_, r := newGame(t, func(c *config.Config) {
		c.Asteroids.SpawnStart = 0.30
		c.Asteroids.SpawnMax = 0.45
	})

	if got := r.SpawnRate(); math.Abs(got-0.30) > 1e-3 {
		t.Errorf("SpawnRate() at start = %v, expected 0.30", got)
	}
	r.elapsed = int(4 * time.Minute / core.TickInterval)
	if got := r.SpawnRate(); math.Abs(got-0.45) > 1e-9 {
		t.Errorf("SpawnRate() after the ramp = %v, expected 0.45", got)
	}
}

func TestBombChance(t *testing.T) {
	tests := []struct {
		elapsed  time.Duration
		expected float64
	}{
		{0, 1.0 / 3000},
		{59 * time.Second, 1.0 / 3000},
		{time.Minute, 1.0/3000 + 1.0/6000},
		{3 * time.Minute, 1.0/3000 + 3.0/6000},
		{30 * time.Minute, 1.0/3000 + 3.0/6000},
	}

	for _, tc := range tests {
		if got := BombChance(tc.elapsed); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("BombChance(%v) = %v, expected %v", tc.elapsed, got, tc.expected)
		}
	}
}

func TestBombRateFollowsGameTime(t *testing.T) {
	tests := []struct {
		name     string
		preset   config.DifficultyPreset
		expected float64
	}{
		{"normal grows with time", config.DifficultyNormal, 1.0/3000 + 2.0/6000},
		{"fixed keeps the base chance", config.DifficultyFixed, 1.0 / 3000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, r := newGame(t, func(c *config.Config) { config.ApplyPreset(c, tc.preset) })
			// Two minutes of game time, not two minutes of nominal frames.
			r.elapsed = int(2*time.Minute/core.TickInterval) + 1
			if got := r.BombRate(); math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("BombRate() = %v, expected %v", got, tc.expected)
			}
		})
	}

	_, r := newGame(t, nil)
	r.elapsed = 120 * core.FPS
	if got := r.BombRate(); math.Abs(got-(1.0/3000+1.0/6000)) > 1e-12 {
		t.Errorf("BombRate() at %v = %v, expected only one whole minute", r.Elapsed(), got)
	}
}

func TestBombSpawning(t *testing.T) {
	g, r := newGame(t, func(c *config.Config) { c.Asteroids.Bombs = true })

	for i := 0; i < 30000; i++ {
		r.trySpawnBomb(g)
	}
	if r.arsenal.Len() == 0 {
		t.Fatal("no bomb in 30000 tries")
	}
	for _, b := range r.arsenal.Bombs() {
		a := b.Anchor()
		if a.Y != 19 || a.X < 0 || a.X > 6 {
			t.Errorf("bomb anchored at %v, expected x in [0,6] on row 19", a)
		}
	}

	g2, r2 := newGame(t, nil)
	for i := 0; i < 30000; i++ {
		r2.trySpawnBomb(g2)
	}
	if r2.arsenal.Len() != 0 {
		t.Error("bombs spawned although disabled")
	}
}

func TestBombClearsAsteroids(t *testing.T) {
	g, r := newGame(t, nil)
	r.arsenal.Spawn(core.Pt(3, 10), g.Group(groupBombs))
	spawn(g, groupAsteroids, core.Pt(4, 8), core.Pt(0, 0))

	// Asteroid falls to (4,9), the bomb rises to (3,9) and touches it.
	g.Manage(0)

	left := entity.Positions(g.Group(groupAsteroids).Blocks())
	if len(left) != 1 || left[0] != core.Pt(0, 1) {
		t.Errorf("asteroids = %v, expected only (0,1) outside the blast", left)
	}
	if r.arsenal.Len() != 0 || g.Group(groupBombs).Len() != 0 {
		t.Error("bomb should be consumed by the explosion")
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, explosions do not score", g.Score())
	}
}

func TestShooterStaysOnBoard(t *testing.T) {
	g, r := newGame(t, nil)
	step := core.Every(10)

	g.SetKeyBindings(core.KeyRight, true)
	for i := 0; i < 8; i++ {
		g.Manage(i * step)
		g.Group(groupBullets).Clear()
	}
	if p := g.Group(groupShooter).First().Pos; p != core.Pt(9, 19) {
		t.Errorf("shooter = %v, expected (9,19)", p)
	}

	g.SetKeyBindings(core.KeyRight, false)
	if r.dir != core.DirNull {
		t.Error("release should stop the shooter")
	}
}

func TestResetClearsArsenal(t *testing.T) {
	g, r := newGame(t, nil)
	r.arsenal.Spawn(core.Pt(0, 10), g.Group(groupBombs))
	r.elapsed = 1000

	g.Reset()
	if r.arsenal.Len() != 0 || r.elapsed != 0 || g.Group(groupBombs).Len() != 0 {
		t.Errorf("after Reset: bombs=%d elapsed=%d", r.arsenal.Len(), r.elapsed)
	}
}
