// bastion is a terminal tower-defense game played over a TUI or SSH.
//
// Usage:
//
//	bastion list              - List available game modes
//	bastion play <mode>       - Play a mode directly
//	bastion menu              - Start menu to pick modes interactively
//	bastion serve             - Start SSH server for remote play
//	bastion scores <mode>     - Show high scores for a mode
//	bastion matches           - Show recent match history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--db <path>     - Set database path (default: ~/.bastion/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-bastion/internal/games/bastion"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bastion",
	Short: "Bastion - Tower defense in your terminal",
	Long: `Bastion is a terminal tower-defense game. Build towers along the
path, stop the waves, and keep the bastion standing.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  matches  - View recent match history

Examples:
  bastion list
  bastion play bastion
  bastion menu
  bastion serve --ssh :2222
  bastion scores bastion_endless`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bastion/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(matchesCmd)
}
