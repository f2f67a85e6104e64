package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-pusher/internal/games/pusher"
	"github.com/vovakirdan/star-pusher/internal/games/pusher/levels"
	"github.com/vovakirdan/star-pusher/internal/platform/tui"
	"github.com/vovakirdan/star-pusher/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing the given pack. Without a pack name the first
built-in pack is played, or the --levels file when one is given.

Controls:
  Arrows/WASD/HJKL  - Move
  Backspace/R       - Restart level
  N / B             - Next / previous level
  C / P             - Change character
  Ctrl+S            - Save a screenshot
  Esc               - Leave
  Q/Ctrl+C          - Quit

Examples:
  starpusher play
  starpusher play courtyards --level 3
  starpusher play --levels ./my_levels.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
}

func runPlay(_ *cobra.Command, args []string) {
	packID := levels.PackIDs()[0]
	if flagLevels != "" {
		packID = levels.FilePackID
	}
	if len(args) == 1 {
		packID = args[0]
	}

	if !registry.Exists(packID) {
		fmt.Fprintf(os.Stderr, "Error: unknown pack %q\n", packID)
		fmt.Fprintln(os.Stderr, "Run 'starpusher list' to see available packs.")
		os.Exit(1)
	}

	lvls, err := registry.Create(packID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading pack: %v\n", err)
		os.Exit(1)
	}
	if flagLevel < 1 || flagLevel > len(lvls) {
		fmt.Fprintf(os.Stderr, "Error: level %d out of range 1-%d\n", flagLevel, len(lvls))
		os.Exit(1)
	}

	cfg := loadConfig()
	game := pusher.New(packID, lvls, cfg)
	game.StartAt(flagLevel - 1)

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig(cfg), tui.GameOptions{
		Player: playerName(),
		Theme:  theme(cfg),
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
