package blast

import (
	"testing"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
)

func newFixture() (*entity.Board, *entity.World, *Arsenal) {
	board := entity.NewBoard()
	return board, entity.NewWorld(board, "targets", "bomb"), NewArsenal()
}

func TestSpawnLayout(t *testing.T) {
	board, w, a := newFixture()
	owner := w.Group("bomb")
	a.Spawn(core.Pt(2, 5), owner)

	if owner.Len() != 16 {
		t.Fatalf("owner holds %d blocks, expected 16", owner.Len())
	}

	kinds := map[entity.Kind]int{}
	seen := map[core.Point]bool{}
	for _, b := range owner.Blocks() {
		kinds[b.Kind]++
		seen[b.Pos] = true
	}
	for x := 2; x < 6; x++ {
		for y := 5; y < 9; y++ {
			if !seen[core.Pt(x, y)] {
				t.Errorf("cell (%d,%d) missing from the 4x4 pattern", x, y)
			}
		}
	}
	if kinds[entity.Blinking] != 4 || kinds[entity.Plain] != 4 || kinds[entity.Hidden] != 8 {
		t.Errorf("kinds = %v, expected 4 blinking, 4 plain, 8 hidden", kinds)
	}

	// Only corners and core are drawn.
	if board.Count() != 8 {
		t.Errorf("lit cells = %d, expected 8", board.Count())
	}
	if board.Lit(core.Pt(3, 5)) {
		t.Error("filler (3,5) should not be drawn")
	}
	if !board.Lit(core.Pt(3, 6)) {
		t.Error("core (3,6) should be drawn")
	}
}

func TestCheckExplosionInnerCore(t *testing.T) {
	_, w, a := newFixture()
	targets := w.Group("targets")
	owner := w.Group("bomb")

	a.Spawn(core.Pt(2, 5), owner)
	hit := targets.Spawn(core.Pt(3, 6), entity.Plain)

	if !a.CheckExplosion(targets) {
		t.Fatal("CheckExplosion() = false, expected true")
	}
	if targets.Contains(hit.Pos) {
		t.Error("target inside the core should be destroyed")
	}
	if a.Len() != 0 || owner.Len() != 0 {
		t.Errorf("bomb should be gone, arsenal=%d owner=%d", a.Len(), owner.Len())
	}
}

func TestExplodeBlastRadius(t *testing.T) {
	_, w, a := newFixture()
	targets := w.Group("targets")
	owner := w.Group("bomb")

	b := a.Spawn(core.Pt(2, 5), owner)
	// Blast box is x in [0,7], y in [3,10].
	inside := []core.Point{{X: 0, Y: 3}, {X: 7, Y: 10}, {X: 6, Y: 4}}
	outside := []core.Point{{X: 8, Y: 5}, {X: 2, Y: 11}, {X: 2, Y: 2}}
	for _, p := range append(append([]core.Point{}, inside...), outside...) {
		targets.Spawn(p, entity.Plain)
	}

	if n := a.Explode(b, targets); n != len(inside) {
		t.Errorf("Explode() destroyed %d, expected %d", n, len(inside))
	}
	for _, p := range inside {
		if targets.Contains(p) {
			t.Errorf("target %v inside blast should be destroyed", p)
		}
	}
	for _, p := range outside {
		if !targets.Contains(p) {
			t.Errorf("target %v outside blast should survive", p)
		}
	}
}

func TestNearMissDoesNotDetonate(t *testing.T) {
	_, w, a := newFixture()
	targets := w.Group("targets")
	a.Spawn(core.Pt(2, 5), w.Group("bomb"))
	targets.Spawn(core.Pt(6, 5), entity.Plain)

	if a.CheckExplosion(targets) {
		t.Error("target just outside the hit box should not detonate")
	}
	if a.Len() != 1 {
		t.Errorf("arsenal = %d, expected 1", a.Len())
	}
}

func TestMoveDestroysBombLeavingTop(t *testing.T) {
	board, w, a := newFixture()
	owner := w.Group("bomb")
	a.Spawn(core.Pt(3, 1), owner)

	a.Move(core.DirUp)
	if a.Len() != 1 || a.Bombs()[0].Anchor() != core.Pt(3, 0) {
		t.Fatalf("bomb should drift to y=0")
	}
	for _, p := range []core.Point{{X: 4, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 3}} {
		if board.Lit(p) {
			t.Errorf("filler %v must stay dark after a move", p)
		}
	}
	for _, p := range []core.Point{{X: 4, Y: 1}, {X: 5, Y: 2}, {X: 3, Y: 0}, {X: 6, Y: 3}} {
		if !board.Lit(p) {
			t.Errorf("cell %v must be lit after a move", p)
		}
	}

	a.Move(core.DirUp)
	if a.Len() != 0 || owner.Len() != 0 {
		t.Errorf("bomb leaving the top should be destroyed, arsenal=%d owner=%d", a.Len(), owner.Len())
	}
	if board.Count() != 0 {
		t.Errorf("board still has %d lit cells", board.Count())
	}
}

func TestMoveDestroysBombReachingBottom(t *testing.T) {
	_, w, a := newFixture()
	a.Spawn(core.Pt(0, 15), w.Group("bomb"))

	a.Move(core.DirDown)
	if a.Len() != 1 {
		t.Fatal("bomb at y=16 should survive")
	}
	a.Move(core.DirDown)
	if a.Len() != 0 {
		t.Error("bomb anchored at y=17 should be destroyed")
	}
}

func TestArsenalsAreIndependent(t *testing.T) {
	_, w1, a1 := newFixture()
	_, _, a2 := newFixture()
	a1.Spawn(core.Pt(0, 0), w1.Group("bomb"))

	if a2.Len() != 0 {
		t.Errorf("second arsenal sees %d bombs, expected 0", a2.Len())
	}
}
