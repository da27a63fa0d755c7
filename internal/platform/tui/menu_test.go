package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/storage"

	_ "github.com/vovakirdan/tui-brickgame/internal/games/snake"
	_ "github.com/vovakirdan/tui-brickgame/internal/games/tetris"
)

type fakeScores struct {
	highs map[core.GameID]int
	runs  map[core.GameID][]storage.ScoreEntry
}

func (f *fakeScores) HighScores() (map[core.GameID]int, error) {
	return f.highs, nil
}

func (f *fakeScores) ReadHighScore(id core.GameID) (int, error) {
	return f.highs[id], nil
}

func (f *fakeScores) TopScores(id core.GameID, limit int) ([]storage.ScoreEntry, error) {
	runs := f.runs[id]
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsGamesWithRecords(t *testing.T) {
	scores := &fakeScores{highs: map[core.GameID]int{core.GameTetris: 4321}}
	m := NewMenuModel(scores, 80)

	v := m.View()
	for _, want := range []string{"B R I C K   G A M E", "Snake", "Tetris", "0004321"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q:\n%s", want, v)
		}
	}
	if strings.Index(v, "Snake") > strings.Index(v, "Tetris") {
		t.Error("games should be listed in id order")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, 80)

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.ID != core.GameTetris {
		t.Fatalf("Selected() = %v, expected tetris", sel)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuKey(t, NewMenuModel(nil, 80), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = menuKey(t, NewMenuModel(nil, 80), runes("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.expected)
		}
	}
}

func TestDifficultySelector(t *testing.T) {
	m := NewDifficultyModel("tetris", config.DifficultyNormal, 80)
	if !strings.Contains(m.View(), "TETRIS") {
		t.Errorf("View() should show the game title:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DifficultyModel)
	if p, ok := m.Selected(); !ok || p != config.DifficultyHard {
		t.Errorf("Selected() = (%q, %v), expected hard", p, ok)
	}

	next, _ = NewDifficultyModel("snake", config.DifficultyEasy, 80).Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(DifficultyModel)
	if _, ok := m.Selected(); ok || !m.WantsBack() {
		t.Error("backspace should go back without choosing")
	}
}

func TestScoreboardRows(t *testing.T) {
	played := time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)
	scores := &fakeScores{
		highs: map[core.GameID]int{core.GameSnake: 900},
		runs: map[core.GameID][]storage.ScoreEntry{
			core.GameSnake: {
				{ID: 2, Game: core.GameSnake, Score: 900, CreatedAt: played},
				{ID: 1, Game: core.GameSnake, Score: 45, CreatedAt: played},
			},
		},
	}

	m := NewScoreboardModel(scores, 100, 30)
	rows := m.Rows()
	if len(rows) != 2 {
		t.Fatalf("Rows() = %v, expected 2 runs", rows)
	}
	if rows[0][0] != "#1" || rows[0][1] != "0000900" || rows[1][1] != "0000045" {
		t.Errorf("Rows() = %v", rows)
	}
	if m.Record() != 900 {
		t.Errorf("Record() = %d, expected 900", m.Record())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.Rows()) != 0 || m.Record() != 0 {
		t.Errorf("after switching games Rows() = %v Record() = %d, expected empty", m.Rows(), m.Record())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
