package engine

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
)

type stubRules struct {
	manages  int
	keys     []core.KeyEvent
	victory  bool
	defeat   bool
	points   int
	starts   int
	startSpd int
}

func (r *stubRules) ID() core.GameID         { return core.GameSnake }
func (r *stubRules) Groups() []string        { return []string{"things", "lights"} }
func (r *stubRules) CheckVictory(*Game) bool { return r.victory }
func (r *stubRules) CheckDefeat(*Game) bool  { return r.defeat }

func (r *stubRules) Start(g *Game) {
	r.starts++
	if r.startSpd > 0 {
		g.SetSpeed(r.startSpd)
	}
	g.Group("things").Spawn(core.Pt(1, 1), entity.Plain)
	g.Group("lights").Spawn(core.Pt(2, 2), entity.Blinking)
}

func (r *stubRules) Manage(g *Game, _ int) {
	r.manages++
	g.AddScore(r.points)
}

func (r *stubRules) SetKeyBindings(_ *Game, key core.Key, pressed bool) {
	r.keys = append(r.keys, core.KeyEvent{Key: key, Pressed: pressed})
}

type memScores struct {
	high    int
	reads   int
	writes  int
	readErr error
	wrErr   error
}

func (m *memScores) ReadHighScore(core.GameID) (int, error) {
	m.reads++
	return m.high, m.readErr
}

func (m *memScores) WriteHighScore(_ core.GameID, score int) error {
	if m.wrErr != nil {
		return m.wrErr
	}
	m.high = score
	m.writes++
	return nil
}

type endScreens struct {
	victories, defeats int
}

func (e *endScreens) ShowVictory() { e.victories++ }
func (e *endScreens) ShowDefeat()  { e.defeats++ }

func newTestGame(r *stubRules) (*Game, *entity.Board, *memScores, *endScreens) {
	board := entity.NewBoard()
	scores := &memScores{}
	screens := &endScreens{}
	g := New(r, Options{Canvas: board, Scores: scores, Screens: screens, Seed: 1})
	return g, board, scores, screens
}

func TestStartResetsState(t *testing.T) {
	r := &stubRules{startSpd: 10}
	g, board, _, _ := newTestGame(r)

	if g.State() != Stopped {
		t.Fatalf("State() = %v, expected stopped", g.State())
	}

	g.Start()
	if g.State() != Running || g.Paused() || g.Score() != 0 {
		t.Errorf("after Start: state=%v paused=%v score=%d", g.State(), g.Paused(), g.Score())
	}
	if g.Speed() != 10 {
		t.Errorf("Speed() = %d, expected rules to override to 10", g.Speed())
	}
	if !board.Lit(core.Pt(1, 1)) {
		t.Error("plain entities should be shown on start")
	}
}

func TestKeysIgnoredWhileStopped(t *testing.T) {
	r := &stubRules{}
	g, _, _, _ := newTestGame(r)

	g.SetKeyBindings(core.KeyLeft, true)
	g.SetKeyBindings(core.KeyReset, true)
	if len(r.keys) != 0 || g.State() != Stopped {
		t.Errorf("stopped game reacted to input: keys=%v state=%v", r.keys, g.State())
	}
}

func TestPauseToggle(t *testing.T) {
	r := &stubRules{}
	g, _, _, _ := newTestGame(r)
	g.Start()

	g.SetKeyBindings(core.KeyPause, true)
	if !g.Paused() {
		t.Fatal("P should pause")
	}

	g.Manage(0)
	if r.manages != 0 {
		t.Error("Manage() must not run rules while paused")
	}
	g.SetKeyBindings(core.KeyLeft, true)
	if len(r.keys) != 0 {
		t.Error("presses must not reach rules while paused")
	}
	g.SetKeyBindings(core.KeyLeft, false)
	if len(r.keys) != 1 {
		t.Error("releases should still reach rules while paused")
	}

	g.SetKeyBindings(core.KeyPause, true)
	g.Manage(0)
	if g.Paused() || r.manages != 1 {
		t.Errorf("unpause failed: paused=%v manages=%d", g.Paused(), r.manages)
	}
}

func TestVictoryTransitionOnce(t *testing.T) {
	r := &stubRules{points: 10}
	g, board, scores, screens := newTestGame(r)
	g.Start()

	r.victory = true
	r.defeat = true
	g.Manage(0)
	g.Manage(1)

	if g.State() != Victory {
		t.Errorf("State() = %v, expected victory", g.State())
	}
	if screens.victories != 1 || screens.defeats != 0 {
		t.Errorf("end screens = %d victories, %d defeats, expected exactly one victory", screens.victories, screens.defeats)
	}
	if g.World().Len() != 0 || board.Count() != 0 {
		t.Error("terminal transition should clear all groups")
	}
	if scores.high != 10 {
		t.Errorf("high score = %d, expected 10", scores.high)
	}
	if r.manages != 1 {
		t.Errorf("rules managed %d times, expected 1", r.manages)
	}
}

func TestDefeatThenReset(t *testing.T) {
	r := &stubRules{}
	g, _, _, screens := newTestGame(r)
	g.Start()

	r.defeat = true
	g.Manage(0)
	if g.State() != Defeat || screens.defeats != 1 {
		t.Fatalf("expected one defeat, state=%v defeats=%d", g.State(), screens.defeats)
	}

	g.SetKeyBindings(core.KeyLeft, true)
	if len(r.keys) != 0 {
		t.Error("movement keys should be ignored after defeat")
	}

	r.defeat = false
	g.SetKeyBindings(core.KeyReset, true)
	if g.State() != Running || r.starts != 2 {
		t.Errorf("Enter should restart: state=%v starts=%d", g.State(), r.starts)
	}
	if g.World().Len() != 2 {
		t.Errorf("World().Len() = %d after reset, expected 2", g.World().Len())
	}
}

func TestUpdateScoreCapsAndPersists(t *testing.T) {
	r := &stubRules{}
	g, _, scores, _ := newTestGame(r)
	scores.high = 500
	g.Start()

	g.AddScore(400)
	g.UpdateScore()
	if scores.writes != 0 {
		t.Error("lower score must not be written")
	}

	g.AddScore(MaxScore)
	g.UpdateScore()
	if g.Score() != MaxScore || scores.high != MaxScore {
		t.Errorf("score=%d stored=%d, expected both capped at %d", g.Score(), scores.high, MaxScore)
	}
}

func TestUpdateScoreSwallowsErrors(t *testing.T) {
	r := &stubRules{points: 5}
	g, _, scores, _ := newTestGame(r)
	scores.readErr = errors.New("disk gone")
	g.Start()

	for i := range 50 {
		g.Manage(i)
		g.UpdateScore()
	}
	if scores.reads != 1 {
		t.Errorf("ReadHighScore called %d times, expected once per session", scores.reads)
	}
	if g.HighScore() != g.Score() {
		t.Errorf("HighScore() = %d, expected the score %d over a zero record", g.HighScore(), g.Score())
	}

	scores.readErr = nil
	scores.wrErr = errors.New("read-only")
	g.AddScore(5)
	g.UpdateScore()
	if g.State() != Running || g.HighScore() != g.Score() {
		t.Errorf("write failure should be swallowed: state=%v high=%d", g.State(), g.HighScore())
	}
}

func TestTickDrainsInputInOrder(t *testing.T) {
	r := &stubRules{}
	g, board, _, _ := newTestGame(r)
	g.Start()

	g.Input().Push(core.Press(core.KeyLeft))
	g.Input().Push(core.Release(core.KeyLeft))
	g.Input().Push(core.Press(core.KeyAction))
	g.Tick()

	want := []core.KeyEvent{core.Press(core.KeyLeft), core.Release(core.KeyLeft), core.Press(core.KeyAction)}
	if len(r.keys) != len(want) {
		t.Fatalf("rules got %d events, expected %d", len(r.keys), len(want))
	}
	for i := range want {
		if r.keys[i] != want[i] {
			t.Errorf("event %d = %+v, expected %+v", i, r.keys[i], want[i])
		}
	}
	if g.Input().Len() != 0 {
		t.Error("queue should be empty after a tick")
	}
	if r.manages != 1 || g.Ticks() != 1 {
		t.Errorf("manages=%d ticks=%d, expected 1 and 1", r.manages, g.Ticks())
	}
	// Tick 0 raises blinking blocks.
	if !board.Lit(core.Pt(2, 2)) {
		t.Error("blinking block should be lit on tick 0")
	}
}

func TestDrawEntitiesRestoresPlainBlocks(t *testing.T) {
	r := &stubRules{}
	g, board, _, _ := newTestGame(r)
	g.Start()

	board.Clear()
	g.DrawEntities(false)
	if board.Lit(core.Pt(1, 1)) {
		t.Error("DrawEntities(false) should not draw")
	}
	g.Draw()
	if !board.Lit(core.Pt(1, 1)) {
		t.Error("Draw() should re-show plain blocks")
	}
	if board.Lit(core.Pt(2, 2)) {
		t.Error("Draw() must leave blinking blocks to their timer")
	}
}
