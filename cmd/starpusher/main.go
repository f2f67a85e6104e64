// starpusher is a Sokoban-style puzzle game for the terminal.
//
// Usage:
//
//	starpusher list             - List level packs
//	starpusher play [pack]      - Play a pack
//	starpusher menu             - Pick packs and levels interactively
//	starpusher serve            - Start SSH server for remote play
//	starpusher scores <pack>    - Show best solves for a pack
//	starpusher check <file>     - Validate a level file
//	starpusher config init      - Write the default config file
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config)
//	--seed <value>   - Set RNG seed for reproducible decoration
//	--db <path>      - Set database path (default: ~/.starpusher/scores.db)
//	--config <path>  - Use a custom config file
//	--levels <path>  - Add a level file as the "file" pack
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-pusher/internal/config"
	"github.com/vovakirdan/star-pusher/internal/core"
	"github.com/vovakirdan/star-pusher/internal/games/pusher/levels"
	"github.com/vovakirdan/star-pusher/internal/platform/tui"
	"github.com/vovakirdan/star-pusher/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagLevels string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "starpusher",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starpusher",
	Short: "Star Pusher - push the stars onto their marks",
	Long: `Star Pusher is a Sokoban-style puzzle game for the terminal.
Push every star onto a goal mark to clear a level.

Available commands:
  list     - Show all level packs
  play     - Play a pack directly
  menu     - Interactive pack and level picker
  serve    - Start SSH server for remote play
  scores   - View best solves
  check    - Validate a level file
  config   - Manage the config file

Examples:
  starpusher list
  starpusher play starter
  starpusher play --levels ./my_levels.txt
  starpusher menu
  starpusher serve --ssh :2222
  starpusher scores starter`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagLevels == "" {
			return nil
		}
		return levels.RegisterFile(flagLevels)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starpusher/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level file to add as the \""+levels.FilePackID+"\" pack")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the game config, exiting on a broken file.
func loadConfig() config.PusherConfig {
	cfg, err := config.LoadPusher(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Play.TickRate = flagFPS
		cfg.Validate()
	}
	return cfg
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig(cfg config.PusherConfig) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Play.TickRate,
		Seed:     flagSeed,
	}
}

// theme resolves the configured theme, warning on unknown names.
func theme(cfg config.PusherConfig) tui.Theme {
	t, ok := tui.ThemeByName(cfg.Play.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Play.Theme)
	}
	return t
}

// openStore opens the solves database. Play continues without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// playerName is recorded with local solves.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
