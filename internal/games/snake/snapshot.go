package snake

import (
	"strconv"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
)

// Snapshot captures the game state for determinism testing and the HUD.
type Snapshot struct {
	Ticks  int
	Score  int
	Speed  int
	Length int
	Head   core.Point
	Dir    core.Direction
	Food   core.Point
	State  engine.State
}

// Snapshot returns the current state of g, which must be running these rules.
func (r *Rules) Snapshot(g *engine.Game) Snapshot {
	s := Snapshot{
		Ticks:  g.Ticks(),
		Score:  g.Score(),
		Speed:  g.Speed(),
		Length: g.Group(groupBody).Len(),
		Dir:    r.dir,
		Food:   parked,
		State:  g.State(),
	}
	if head := g.Group(groupBody).Last(); head != nil {
		s.Head = head.Pos
	}
	if food := g.Group(groupFood).First(); food != nil {
		s.Food = food.Pos
	}
	return s
}

// Details reports the snake length and heading for the HUD.
func (r *Rules) Details() []engine.Detail {
	if r.body == nil {
		return nil
	}
	return []engine.Detail{
		{Label: "Length", Value: strconv.Itoa(r.body.Len())},
		{Label: "Heading", Value: r.dir.String()},
	}
}
