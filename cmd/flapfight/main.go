// flapfight runs a two-player platform shooter and two flappy-bird games in
// the terminal.
//
// Usage:
//
//	flapfight list              - List available games
//	flapfight play <game>       - Play a game
//	flapfight menu              - Start menu to pick games interactively
//	flapfight scores <game>     - Show high scores or recent matches
//	flapfight records           - Show two-player flappy records
//	flapfight config <game>     - Print a game's default config
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.flapfight/scores.db)
//	--records <path>  - Keep two-player records in a plain file
//	--verbose         - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flapfight/internal/games/fight"
	_ "github.com/vovakirdan/flapfight/internal/games/flappy"
	_ "github.com/vovakirdan/flapfight/internal/games/flappy2"
)

// appName names the per-user data directory used by gdata.
const appName = "flapfight"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagRecords string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flapfight",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flapfight",
	Short: "Flapfight - platform duels and flappy birds in your terminal",
	Long: `Flapfight is a small terminal arcade built around one rectangle
physics core.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View high scores and match history
  records  - View two-player flappy records
  config   - Print a default game config

Examples:
  flapfight list
  flapfight play fight
  flapfight play flappy2 --records ./records.txt
  flapfight menu
  flapfight scores fight`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapfight/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagRecords, "records", "", "Records file for flappy2 (default: per-user data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(configCmd)
}
