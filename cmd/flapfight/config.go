package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapfight/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default config of a game",
	Long: `Print the embedded default YAML of a game. Save it to
~/.flapfight/configs/<game>.yaml or pass it with --config to override values.

Examples:
  flapfight config fight > ~/.flapfight/configs/fight.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := requireGame(args[0]); err != nil {
		return err
	}
	_, err := os.Stdout.Write(config.GetDefaultYAML(args[0]))
	return err
}
