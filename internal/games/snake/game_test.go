package snake

import (
	"testing"

	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
)

func newGame(t *testing.T, seed int64, mut func(*config.Config)) (*engine.Game, *Rules, *entity.Board) {
	t.Helper()
	cfg := config.DefaultConfig()
	if mut != nil {
		mut(&cfg)
	}
	r := New(cfg)
	board := entity.NewBoard()
	g := engine.New(r, engine.Options{Canvas: board, Seed: seed})
	g.Start()
	return g, r, board
}

func moveFood(g *engine.Game, p core.Point) {
	g.Group(groupFood).First().MoveTo(p)
}

func TestStartLayout(t *testing.T) {
	g, r, board := newGame(t, 1, nil)

	body := entity.Positions(g.Group(groupBody).Blocks())
	want := []core.Point{{X: 4, Y: 3}, {X: 4, Y: 4}, {X: 4, Y: 5}}
	if len(body) != len(want) {
		t.Fatalf("body = %v, expected %v", body, want)
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], want[i])
		}
	}
	if r.dir != core.DirDown {
		t.Errorf("dir = %v, expected Down", r.dir)
	}
	if g.Speed() != 10 {
		t.Errorf("Speed() = %d, expected 10", g.Speed())
	}

	food := g.Group(groupFood).First()
	if food.Kind != entity.Blinking || !food.Pos.OnGrid() || g.Group(groupBody).Contains(food.Pos) {
		t.Errorf("food = %+v, expected a blinking block on a free cell", food)
	}
	if board.Count() != 4 {
		t.Errorf("board.Count() = %d, expected 4", board.Count())
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs end in identical states
	g1, r1, _ := newGame(t, 12345, nil)
	g2, r2, _ := newGame(t, 12345, nil)

	for i := 0; i < 60; i++ {
		for _, g := range []*engine.Game{g1, g2} {
			switch i {
			case 20:
				g.Input().Push(core.Press(core.KeyRight))
			case 40:
				g.Input().Push(core.Press(core.KeyUp))
			}
			g.Tick()
		}
	}

	if s1, s2 := r1.Snapshot(g1), r2.Snapshot(g2); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestMoveDownUntilDefeat(t *testing.T) {
	g, r, _ := newGame(t, 1, nil)
	moveFood(g, core.Pt(0, 0))
	step := core.Every(g.Speed())

	g.Manage(1)
	if head := g.Group(groupBody).Last().Pos; head != core.Pt(4, 5) {
		t.Fatalf("snake moved off its interval: head %v", head)
	}

	for i := 0; i < 14; i++ {
		g.Manage(i * step)
		if g.State() != engine.Running {
			t.Fatalf("defeated after %d moves", i+1)
		}
	}
	if s := r.Snapshot(g); s.Head != core.Pt(4, 19) || s.Length != 3 {
		t.Fatalf("head = %v length = %d, expected (4,19) and 3", s.Head, s.Length)
	}

	g.Manage(14 * step)
	if g.State() != engine.Defeat {
		t.Errorf("State() = %v, expected defeat once the head leaves the board", g.State())
	}
}

func TestEatingGrowsByOne(t *testing.T) {
	g, _, board := newGame(t, 3, nil)
	moveFood(g, core.Pt(4, 6))
	step := core.Every(g.Speed())

	g.Manage(0)
	if n := g.Group(groupBody).Len(); n != 3 {
		t.Fatalf("Len() = %d before eating, expected 3", n)
	}

	g.Manage(step)
	body := g.Group(groupBody)
	if body.Len() != 4 {
		t.Errorf("Len() = %d after eating, expected 4", body.Len())
	}
	if g.Score() != 15 {
		t.Errorf("Score() = %d, expected 15", g.Score())
	}
	if head := body.Last().Pos; head != core.Pt(4, 7) {
		t.Errorf("head = %v, expected (4,7)", head)
	}
	// Food is placed before the head advances, so only the old cells are excluded.
	food := g.Group(groupFood).First().Pos
	if !food.OnGrid() || food == core.Pt(4, 5) || food == core.Pt(4, 6) || food == core.Pt(4, 4) {
		t.Errorf("food respawned at %v", food)
	}

	moveFood(g, core.Pt(0, 0))
	g.Manage(2 * step)
	if body.Len() != 4 {
		t.Errorf("Len() = %d, growth should be consumed once", body.Len())
	}
	if board.Lit(core.Pt(4, 4)) {
		t.Error("tail cell should be dark after the tail moved on")
	}
}

func TestDirectionKeys(t *testing.T) {
	g, r, _ := newGame(t, 1, nil)
	moveFood(g, core.Pt(0, 0))

	g.SetKeyBindings(core.KeyUp, true)
	if r.dir != core.DirDown {
		t.Errorf("reversal accepted: dir = %v", r.dir)
	}

	g.SetKeyBindings(core.KeyLeft, true)
	g.SetKeyBindings(core.KeyDown, true)
	if r.dir != core.DirLeft {
		t.Errorf("dir = %v, expected Left and locked until the next move", r.dir)
	}

	g.Manage(0)
	if head := g.Group(groupBody).Last().Pos; head != core.Pt(3, 5) {
		t.Errorf("head = %v, expected (3,5)", head)
	}

	g.SetKeyBindings(core.KeyRight, true)
	if r.dir != core.DirLeft {
		t.Error("reversal accepted after the move")
	}
	g.SetKeyBindings(core.KeyUp, true)
	if r.dir != core.DirUp {
		t.Errorf("dir = %v, expected Up after unlock", r.dir)
	}
}

func TestBoost(t *testing.T) {
	g, _, _ := newGame(t, 1, nil)

	g.SetKeyBindings(core.KeyAction, true)
	if g.Speed() != 20 {
		t.Errorf("Speed() = %d while boosting, expected 20", g.Speed())
	}
	g.SetKeyBindings(core.KeyAction, false)
	if g.Speed() != 10 {
		t.Errorf("Speed() = %d after release, expected 10", g.Speed())
	}
}

func TestCatchUpSteps(t *testing.T) {
	g, _, _ := newGame(t, 1, func(c *config.Config) {
		c.Snake.BoostSpeed = 2 * core.FPS
	})
	moveFood(g, core.Pt(0, 0))

	g.SetKeyBindings(core.KeyAction, true)
	g.Manage(0)
	if head := g.Group(groupBody).Last().Pos; head != core.Pt(4, 8) {
		t.Errorf("head = %v, expected three cells per tick at 2*FPS", head)
	}
}

func TestVictoryAtWinLength(t *testing.T) {
	g, _, _ := newGame(t, 1, func(c *config.Config) {
		c.Snake.WinLength = 4
	})
	moveFood(g, core.Pt(4, 6))
	step := core.Every(g.Speed())

	g.Manage(0)
	g.Manage(step)
	if g.State() != engine.Victory {
		t.Errorf("State() = %v, expected victory at length 4", g.State())
	}
	if config.DefaultConfig().Snake.WinLength != 200 {
		t.Error("default winning length should be 200")
	}
}

func TestBitingBodyIsDefeat(t *testing.T) {
	g, r, _ := newGame(t, 1, nil)
	if r.CheckDefeat(g) {
		t.Fatal("fresh snake reported defeat")
	}
	g.Group(groupBody).Spawn(core.Pt(4, 4), entity.Plain)
	if !r.CheckDefeat(g) {
		t.Error("head on a body segment should be defeat")
	}
}

func TestFoodPlacement(t *testing.T) {
	g, r, _ := newGame(t, 9, nil)
	food := g.Group(groupFood).First()
	body := g.Group(groupBody)

	for i := 0; i < 200; i++ {
		r.placeFood(g, food)
		if body.Contains(food.Pos) || !food.Pos.OnGrid() {
			t.Fatalf("food placed at %v", food.Pos)
		}
	}

	body.Clear()
	for y := range core.GridH {
		for x := range core.GridW {
			body.Spawn(core.Pt(x, y), entity.Plain)
		}
	}
	r.placeFood(g, food)
	if food.Pos != parked {
		t.Errorf("food = %v on a full board, expected parked off-grid", food.Pos)
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		length   int
		expected int
	}{
		{3, 15},
		{25, 15},
		{26, 45},
		{50, 45},
		{51, 100},
		{100, 100},
		{101, 250},
	}

	for _, tc := range tests {
		if got := Points(tc.length); got != tc.expected {
			t.Errorf("Points(%d) = %d, expected %d", tc.length, got, tc.expected)
		}
	}
}

func TestDetails(t *testing.T) {
	g, r, _ := newGame(t, 1, nil)
	d := g.Status().Details
	if len(d) != 2 || d[0].Value != "3" || d[1].Value != r.dir.String() {
		t.Errorf("Details = %+v", d)
	}
}
