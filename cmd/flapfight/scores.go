package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flapfight/internal/registry"
	"github.com/vovakirdan/flapfight/internal/storage"
)

var flagResetScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores or recent matches for a game",
	Long: `Display the top 10 high scores of a single-player game, or the
10 most recent matches and the win tally of a two-player game.

Examples:
  flapfight scores flappy
  flapfight scores fight
  flapfight scores fight --reset`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScores, "reset", false, "Delete the game's scores and matches")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if err := requireGame(gameID); err != nil {
		return err
	}

	var info registry.GameInfo
	for _, g := range registry.List() {
		if g.ID == gameID {
			info = g
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagResetScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("history cleared", "game", gameID)
		return nil
	}

	if info.Players > 1 {
		return printMatches(store, info)
	}
	return printScores(store, info)
}

func printScores(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flapfight play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	high, err := store.HighScore(info.ID)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Average: %.1f  (%d runs, last %s)\n",
		high, stats.AvgScore, stats.GamesCount,
		stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

func printMatches(store *storage.Store, info registry.GameInfo) error {
	matches, err := store.RecentMatches(info.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Matches - %s\n", info.Title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flapfight play %s' to record the first one!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-4s  %-6s  %-6s  %s\n", "P1", "P2", "Winner", "Time", "Date")
	fmt.Printf("  %-4s  %-4s  %-6s  %-6s  %s\n", "--", "--", "------", "----", "----")
	for _, m := range matches {
		fmt.Printf("  %-4d  %-4d  %-6s  %-6s  %s\n",
			m.Score1, m.Score2, m.WinnerLabel(),
			fmt.Sprintf("%ds", m.Seconds(flagFPS)),
			m.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetMatchStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("P1 wins: %d  P2 wins: %d  Draws: %d  (%d matches)\n",
		stats.P1Wins, stats.P2Wins, stats.Draws, stats.Matches)
	return nil
}
