package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bastion/internal/storage"
)

var flagMatchesLimit int

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Show recent match history",
	Long: `Display the most recent matches across all modes, with outcome,
waves cleared, and score.

Examples:
  bastion matches
  bastion matches --limit 50`,
	Run: runMatches,
}

func init() {
	matchesCmd.Flags().IntVar(&flagMatchesLimit, "limit", 20, "Number of matches to show")
}

func runMatches(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	matches, err := store.RecentMatches(flagMatchesLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Println("Recent matches:")
	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %-10s  %-9s  %-5s  %-6s  %s\n",
		"Mode", "Map", "Level", "Result", "Waves", "Score", "Date")
	fmt.Printf("  %-16s  %-8s  %-10s  %-9s  %-5s  %-6s  %s\n",
		"----", "---", "-----", "------", "-----", "-----", "----")

	for _, m := range matches {
		level := m.LevelID
		if level == "" {
			level = "-"
		}
		dateStr := m.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-8s  %-10s  %-9s  %-5d  %-6d  %s\n",
			m.GameID, m.MapID, level, m.Result, m.WavesCleared, m.Score, dateStr)
	}
}
