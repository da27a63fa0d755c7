package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brickgame/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games on the brick game.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := len("Name")
	for _, g := range games {
		maxNameLen = max(maxNameLen, len(g.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxNameLen, g.Name, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'brickgame play <name>' to play a game.")
}
