package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapfight/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, Tab for the
scoreboard. After a game ends, you return to the menu to play again.

Examples:
  flapfight menu
  flapfight menu --fps 30
  flapfight menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHold, "Ticks a move key stays down after a press")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if err := configureGame(menuResult.GameID, "", flagDifficulty); err != nil {
			logger.Error("cannot start game", "game", menuResult.GameID, "err", err)
			continue
		}

		// Fresh seed per game unless pinned by --seed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := playGame(menuResult.GameID, cfg, store, flagHold); err != nil {
			logger.Error("game ended with an error", "err", err)
		}
	}
}
