// Package frame composes the brick game screen, the board plus its HUD, into
// a core.Screen that either terminal backend can paint.
package frame

import (
	"fmt"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
	"github.com/vovakirdan/tui-brickgame/internal/entity"
)

// Screen size in characters. Each board cell is two characters wide.
const (
	Width  = 40
	Height = core.GridH + 2

	hudX = 2*core.GridW + 4
)

const (
	litCell  = "[]"
	darkCell = " ."
)

// View is everything one frame shows.
type View struct {
	Board   [core.GridH][core.GridW]bool
	Status  engine.Status
	Preview []string // optional next-piece drawing
}

// previewer is implemented by rules that can draw their next piece.
type previewer interface {
	Preview() []string
}

// Capture reads the game's HUD status and the board's lit cells.
func Capture(g *engine.Game, b *entity.Board) View {
	v := View{Board: b.Snapshot(), Status: g.Status()}
	if p, ok := g.Rules().(previewer); ok && g.Running() {
		v.Preview = p.Preview()
	}
	return v
}

// GameColor is the lit-cell color of each game.
func GameColor(id core.GameID) core.Color {
	switch id {
	case core.GameSnake:
		return core.ColorBrightGreen
	case core.GameBreakout:
		return core.ColorBrightCyan
	case core.GameAsteroids:
		return core.ColorBrightYellow
	case core.GameTetris:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightWhite
	}
}

// Draw clears s and composes v into it.
func Draw(s *core.Screen, v View) {
	s.Clear()
	drawBoard(s, v)
	drawHUD(s, v)

	switch v.Status.State {
	case engine.Victory:
		drawBanner(s, "VICTORY!", core.ColorBrightGreen)
	case engine.Defeat:
		drawBanner(s, "GAME OVER", core.ColorBrightRed)
	}
}

func drawBoard(s *core.Screen, v View) {
	s.DrawBox(core.NewRect(0, 0, 2*core.GridW+2, core.GridH+2), core.ColorGray)

	lit := GameColor(v.Status.Game)
	for y := range core.GridH {
		for x := range core.GridW {
			if v.Board[y][x] {
				s.DrawTextColor(1+2*x, 1+y, litCell, lit)
			} else {
				s.DrawTextColor(1+2*x, 1+y, darkCell, core.ColorGray)
			}
		}
	}
}

func drawHUD(s *core.Screen, v View) {
	st := v.Status
	y := 1
	line := func(text string, c core.Color) {
		s.DrawTextColor(hudX, y, text, c)
		y++
	}

	line(st.Game.Title(), core.ColorBrightWhite)
	y++
	line("SCORE", core.ColorGray)
	line(fmt.Sprintf("%07d", st.Score), core.ColorWhite)
	line("HI-SCORE", core.ColorGray)
	line(fmt.Sprintf("%07d", st.High), core.ColorWhite)
	line("SPEED", core.ColorGray)
	line(fmt.Sprintf("%d", st.Speed), core.ColorWhite)
	y++

	for _, d := range st.Details {
		if d.Label == "Next" && len(v.Preview) > 0 {
			continue
		}
		line(fmt.Sprintf("%s: %s", d.Label, d.Value), core.ColorWhite)
	}
	if len(v.Preview) > 0 {
		y++
		line("NEXT", core.ColorGray)
		for _, row := range v.Preview {
			line(row, GameColor(st.Game))
		}
	}

	if st.Paused {
		s.DrawTextColor(hudX, core.GridH, "PAUSED", core.ColorBrightYellow)
	}
}

// drawBanner overlays the end message across the middle of the board.
func drawBanner(s *core.Screen, text string, c core.Color) {
	w := 2 * core.GridW
	mid := core.GridH / 2
	s.DrawRect(core.NewRect(1, mid-1, w, 4), ' ')
	s.DrawTextCentered(1, mid, w, text, c)
	s.DrawTextCentered(1, mid+1, w, "ENTER: AGAIN", core.ColorWhite)
}
