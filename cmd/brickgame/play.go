package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brickgame/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move
  Space        - Action (boost, shoot, launch, drop)
  C/Shift+Arr  - Hold (Tetris: swap with the next piece)
  P            - Pause
  Enter        - Start over
  Backspace    - Leave the game
  Esc/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start
  normal - Values from the config
  hard   - Faster start, denser asteroid field
  fixed  - No speed-up over time

Examples:
  brickgame play snake
  brickgame play tetris --difficulty fixed
  brickgame play asteroids --backend tcell --sound
  brickgame play breakout --config ./my-brickgame.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id, err := registry.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("%w\nRun 'brickgame list' to see available games", err)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if _, err := a.play(id, a.cfg); err != nil {
		return fmt.Errorf("running %s: %w", id.Title(), err)
	}
	return nil
}
