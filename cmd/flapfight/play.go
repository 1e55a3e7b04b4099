package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapfight/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHold       int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (fight):
  P1: A/D move, W jump, S shot, E heavy shot
  P2: arrows move, Up jump, Down shot, / heavy shot

Controls (flappy):   Space/W/Up flap
Controls (flappy2):  P1 Space, P2 W

  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Terminals do not report key releases, so a move key stays down for
--hold ticks after each press.

Difficulty options:
  easy   - flappy: start at lowest difficulty; fight: 150 health
  normal - flappy: start at 30% difficulty
  hard   - flappy: start at 70% difficulty; fight: 60 health
  fixed  - No progression, stays at config's initial level

Examples:
  flapfight play fight
  flapfight play flappy --difficulty hard
  flapfight play fight --hold 12
  flapfight play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHold, "Ticks a move key stays down after a press")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if err := requireGame(gameID); err != nil {
		return err
	}
	if err := configureGame(gameID, flagConfig, flagDifficulty); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return playGame(gameID, runtimeConfig(), store, flagHold)
}
