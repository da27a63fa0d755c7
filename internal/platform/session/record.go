package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brickgame/internal/core"
	"github.com/vovakirdan/tui-brickgame/internal/engine"
)

// History records finished runs.
type History interface {
	SaveScore(id core.GameID, score int) (int64, error)
}

// Recorder saves every finished run of a game exactly once.
type Recorder struct {
	history  History
	logger   *log.Logger
	recorded bool
}

// NewRecorder creates a recorder. A nil history records nothing.
func NewRecorder(history History, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{history: history, logger: logger}
}

// Observe is called after every tick. It saves the run when the game has just
// finished with a non-zero score; a running game arms it again.
func (r *Recorder) Observe(g *engine.Game) {
	switch g.State() {
	case engine.Running:
		r.recorded = false
	case engine.Victory, engine.Defeat:
		if r.recorded {
			return
		}
		r.recorded = true
		if r.history == nil || g.Score() == 0 {
			return
		}
		id, err := r.history.SaveScore(g.ID(), g.Score())
		if err != nil {
			r.logger.Warn("could not save run", "error", err)
			return
		}
		r.logger.Debug("run saved", "id", id, "score", g.Score())
	}
}
