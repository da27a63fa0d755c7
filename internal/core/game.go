package core

import "fmt"

// GameID enumerates the hosted games. It is the key into the score record.
type GameID int

const (
	GameSnake GameID = iota + 1
	GameBreakout
	GameAsteroids
	GameTetris
)

// AllGames lists every game in menu order.
var AllGames = []GameID{GameSnake, GameBreakout, GameAsteroids, GameTetris}

// String returns the stable lowercase name used on the command line and in storage.
func (id GameID) String() string {
	switch id {
	case GameSnake:
		return "snake"
	case GameBreakout:
		return "breakout"
	case GameAsteroids:
		return "asteroids"
	case GameTetris:
		return "tetris"
	default:
		return fmt.Sprintf("game(%d)", int(id))
	}
}

// Title returns the display name.
func (id GameID) Title() string {
	switch id {
	case GameSnake:
		return "Snake"
	case GameBreakout:
		return "Breakout"
	case GameAsteroids:
		return "Asteroids"
	case GameTetris:
		return "Tetris"
	default:
		return "Unknown"
	}
}

// ParseGameID resolves a command-line name to a GameID.
func ParseGameID(name string) (GameID, error) {
	for _, id := range AllGames {
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown game %q", name)
}

// Cue names a sound effect emitted by the engine.
type Cue int

const (
	CueEat Cue = iota + 1
	CueHit
	CueLine
	CueExplosion
	CueStage
	CueVictory
	CueDefeat
)
