package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-pusher/internal/games/pusher"
	"github.com/vovakirdan/star-pusher/internal/platform/tui"
	"github.com/vovakirdan/star-pusher/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a pack and level picker",
	Long: `Start in interactive menu mode.

Pick a pack, then a level. Leaving a level with Esc returns to
the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  starpusher menu
  starpusher menu --levels ./my_levels.txt
  starpusher menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	th := theme(gameCfg)
	cfg := runtimeConfig(gameCfg)
	store := openStore()

	for {
		menuResult, err := tui.RunMenu(store, cfg, th)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, th)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		packID := menuResult.PackID
		if packID == "" {
			break
		}

		lvls, err := registry.Create(packID)
		if err != nil {
			logger.Error("could not load pack", "pack", packID, "error", err)
			continue
		}

		sel, quit, err := tui.RunLevelPicker(packID, registry.Title(packID), lvls, store, cfg, th)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if quit {
			break
		}
		if sel == nil {
			continue
		}

		game := pusher.New(packID, lvls, gameCfg)
		game.StartAt(sel.Level)
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, cfg, tui.GameOptions{
			Player: playerName(),
			Theme:  th,
			Logger: logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
