package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bastion/internal/config"
	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/core"
	"github.com/vovakirdan/tui-bastion/internal/games/bastion"
	"github.com/vovakirdan/tui-bastion/internal/platform/tui"
	"github.com/vovakirdan/tui-bastion/internal/registry"
	"github.com/vovakirdan/tui-bastion/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagMap        string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified game mode.

Controls:
  WASD/Arrows - Move build cursor
  Enter/Space - Build selected tower
  Tab         - Cycle tower types
  U           - Upgrade tower under cursor
  X           - Sell tower under cursor
  T           - Cycle targeting mode
  F           - Toggle fast-forward
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More money and lives, better refunds
  normal - Default tuning
  hard   - Less money and lives, worse refunds

Examples:
  bastion play bastion
  bastion play bastion --level canyon-1
  bastion play bastion_endless --map canyon
  bastion play bastion --difficulty hard
  bastion play bastion --config ./my-bastion.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Campaign level id (skips the selector)")
	playCmd.Flags().StringVar(&flagMap, "map", "", "Endless map id (skips the selector)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bastion list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	if err := applyGameplayConfig(flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case flagLevel != "":
		if !levelExists(flagLevel) {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", flagLevel)
			os.Exit(1)
		}
		gameID = "bastion"
		bastion.SetLevel(flagLevel)

	case flagMap != "":
		if !mapExists(flagMap) {
			fmt.Fprintf(os.Stderr, "Error: unknown map %q\n", flagMap)
			os.Exit(1)
		}
		gameID = "bastion_endless"
		bastion.SetMap(flagMap)

	case gameID == "bastion":
		// Show the mode/level selector
		selection, updatedCfg, selErr := tui.RunBastionModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		if selection.Mode == tui.BastionModeEndless {
			gameID = "bastion_endless"
			bastion.SetMap(selection.MapID)
		} else {
			bastion.SetLevel(selection.LevelID)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameplayConfig loads the tuning config, applies the difficulty
// preset, and installs the resulting balance for new games.
func applyGameplayConfig(configPath, difficulty string) error {
	cfg, err := config.LoadBastion(configPath)
	if err != nil {
		return err
	}

	if difficulty != "" {
		preset := config.DifficultyPreset(difficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
			config.ApplyBastionPreset(&cfg, preset)
		default:
			return fmt.Errorf("unknown difficulty %q (easy, normal, hard)", difficulty)
		}
	}

	balance := cfg.ToBalance()
	bastion.SetBalance(&balance)
	return nil
}

func levelExists(id string) bool {
	for _, lvl := range content.Levels() {
		if lvl.ID == id {
			return true
		}
	}
	return false
}

func mapExists(id string) bool {
	for _, m := range content.Maps() {
		if m.ID == id {
			return true
		}
	}
	return false
}
