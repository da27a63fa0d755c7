// brickgame plays the classic handheld brick games in the terminal.
//
// Usage:
//
//	brickgame list              - List available games
//	brickgame play <game>       - Play a game
//	brickgame menu              - Start menu to pick games interactively
//	brickgame scores <game>     - Show the record and best runs of a game
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.brickgame/scores.db)
//	--config <path>     - Load game settings from a YAML file
//	--difficulty <name> - easy, normal, hard or fixed
//	--log <path>        - Write a log file
//	--sound             - Play sound cues
//	--backend <name>    - tui (Bubble Tea) or tcell
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-brickgame/internal/games/asteroids"
	_ "github.com/vovakirdan/tui-brickgame/internal/games/breakout"
	_ "github.com/vovakirdan/tui-brickgame/internal/games/snake"
	_ "github.com/vovakirdan/tui-brickgame/internal/games/tetris"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
	flagSound      bool
	flagBackend    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brick Game - Snake, Breakout, Asteroids and Tetris on a 10x20 board",
	Long: `Brick Game recreates the handheld brick game in your terminal.
Every game runs on the same 10x20 board of bricks.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores

Examples:
  brickgame list
  brickgame play tetris
  brickgame play snake --difficulty hard --sound
  brickgame menu --backend tcell
  brickgame scores breakout`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickgame/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues (also enabled by audio.enabled in the config)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendTUI, "Terminal backend: tui or tcell")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
