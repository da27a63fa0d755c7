package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brickgame/internal/config"
	"github.com/vovakirdan/tui-brickgame/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the brick game with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, then pick a
difficulty. Backspace in a game returns here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q/Esc        - Quit

Examples:
  brickgame menu
  brickgame menu --backend tcell
  brickgame menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	var scores tui.HighScoreLister
	var history tui.ScoreHistory
	if a.store != nil {
		scores, history = a.store, a.store
	}

	// Menu loop
	for {
		res, err := tui.RunMenu(scores, a.runtime.ScreenW)
		if err != nil {
			return err
		}

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(history, a.runtime.ScreenW, a.runtime.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		preset, ok, quit, err := tui.RunDifficultySelector(res.Game.Title(), a.cfg.Difficulty.Preset, a.runtime.ScreenW)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if !ok {
			continue
		}

		cfg := a.cfg
		config.ApplyPreset(&cfg, preset)
		back, err := a.play(res.Game, cfg)
		if err != nil {
			a.logger.Error("game failed", "game", res.Game, "error", err)
			return err
		}
		if !back {
			return nil
		}
	}
}
