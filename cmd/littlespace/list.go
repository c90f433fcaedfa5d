package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/StevenRydell/littlespace/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Long:  `Shows a list of all demos registered in Little Space.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No demos available.")
		return
	}

	fmt.Println("Available demos:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Title", "Notes")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, g.ID, g.Title, notes(g))
	}

	fmt.Println()
	fmt.Println("Run 'littlespace play <id>' to play a demo.")
}

func notes(g registry.GameInfo) string {
	var parts []string
	if g.Difficulty {
		parts = append(parts, "difficulty presets")
	}
	if g.Stats {
		parts = append(parts, "run stats")
	}
	return strings.Join(parts, ", ")
}
