package engine

import "github.com/vovakirdan/tui-brickgame/internal/core"

// Rules is the per-game rule engine driven by Game.
type Rules interface {
	// ID identifies the game; it is the score record key.
	ID() core.GameID
	// Groups lists the entity groups the game uses, in draw order.
	Groups() []string
	// Start spawns the initial entities. Score and speed are already reset.
	Start(g *Game)
	// Manage runs one tick of game logic.
	Manage(g *Game, tick int)
	// SetKeyBindings handles movement and action keys.
	SetKeyBindings(g *Game, key core.Key, pressed bool)
	CheckVictory(g *Game) bool
	CheckDefeat(g *Game) bool
}

// Detail is an extra HUD line a game may report (level, next piece).
type Detail struct {
	Label string
	Value string
}

// Reporter is implemented by rules that expose extra HUD details.
type Reporter interface {
	Details() []Detail
}

// ScoreStore persists one high score per game.
type ScoreStore interface {
	ReadHighScore(id core.GameID) (int, error)
	WriteHighScore(id core.GameID, score int) error
}

// EndScreen is shown once per terminal transition.
type EndScreen interface {
	ShowVictory()
	ShowDefeat()
}

// SoundPlayer plays short effect cues. Implementations must not block.
type SoundPlayer interface {
	Play(c core.Cue)
}
