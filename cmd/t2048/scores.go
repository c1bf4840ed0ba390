package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 2048 scores with the largest tile, turn count and result.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --interactive
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(game.ID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	scores, err := store.TopScores(game.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - 2048")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 't2048 play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-9s  %s\n", "Rank", "Score", "Max", "Turns", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-9s  %s\n", "----", "-----", "---", "-----", "------", "----")

	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-6d  %-9s  %s\n",
			i+1, e.Score, e.MaxTile, e.Turns, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	stats, err := store.Stats(game.ID)
	if err == nil {
		fmt.Fprintf(out, "Best: %d  Top tile: %d  Games: %d  Wins: %d\n",
			stats.HighScore, stats.BestTile, stats.GamesCount, stats.Wins)
	}
	return nil
}
