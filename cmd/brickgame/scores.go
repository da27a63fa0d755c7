package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brickgame/internal/registry"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the record and the top 10 runs for the specified game.

Examples:
  brickgame scores tetris
  brickgame scores snake --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history and reset the record")
}

func runScores(cmd *cobra.Command, args []string) error {
	id, err := registry.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("%w\nRun 'brickgame list' to see available games", err)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()
	if a.store == nil {
		return errors.New("scores database is not available")
	}

	if flagClear {
		if err := a.store.ClearScores(id); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Scores for %s cleared.\n", id.Title())
		return nil
	}

	scores, err := a.store.TopScores(id, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", id.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'brickgame play %s' to set the first high score!\n", id)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-7s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %07d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := a.store.GetGameStats(id)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Record: %07d   Runs: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}
