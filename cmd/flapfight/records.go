package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapfight/internal/records"
)

var flagResetRecords bool

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the two-player flappy records",
	Long: `Display the best score of each seat in flappy2.

Records are kept in the per-user data directory unless --records names
a plain file ("<p1>\n<p2>\n").

Examples:
  flapfight records
  flapfight records --records ./records.txt
  flapfight records --reset`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagResetRecords, "reset", false, "Clear both records")
}

func runRecords(cmd *cobra.Command, args []string) error {
	store, err := records.Open(flagRecords, appName)
	if err != nil {
		return err
	}

	if flagResetRecords {
		if err := store.Save(records.Records{}); err != nil {
			return err
		}
		logger.Info("records cleared")
		return nil
	}

	r, err := store.Load()
	if err != nil {
		logger.Warn("records unreadable, showing zero", "err", err)
	}
	fmt.Printf("Flappy 2P records\n\n  P1: %d\n  P2: %d\n", r.P1, r.P2)
	return nil
}
