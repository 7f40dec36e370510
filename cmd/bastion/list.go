package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available game modes, maps, and levels",
	Long:  `Shows the registered game modes together with the built-in maps and levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No game modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Maps:")
	for _, m := range content.Maps() {
		fmt.Printf("  %-8s  %s (%dx%d)\n", m.ID, m.Name, m.Cols, m.Rows)
	}

	fmt.Println()
	fmt.Println("Levels:")
	for _, lvl := range content.Levels() {
		fmt.Printf("  %-10s  %s (%s, %d waves)\n", lvl.ID, lvl.Name, lvl.MapID, len(lvl.Waves))
	}

	fmt.Println()
	fmt.Println("Run 'bastion play <id>' to play a mode.")
}
