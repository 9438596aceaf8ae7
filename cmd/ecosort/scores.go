package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ecosort/internal/platform/tui"
	"github.com/vovakirdan/ecosort/internal/registry"
	"github.com/vovakirdan/ecosort/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs for the specified mode (default: ecosort).

Examples:
  ecosort scores
  ecosort scores ecosort_arcade --limit 20
  ecosort scores --tui
  ecosort scores ecosort --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse all modes interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := "ecosort"
	if len(args) > 0 {
		mode = args[0]
	}

	// Check if mode exists
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'ecosort list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = store.ClearRuns(mode)
		if err == nil {
			fmt.Printf("Cleared all runs of %s.\n", mode)
			logger.Info("runs cleared", "mode", mode)
		}
	case flagScoresTUI:
		cfg := runtimeConfig()
		err = tui.RunScoreboard(store, mode, cfg.ScreenW, cfg.ScreenH)
	default:
		err = printScores(store, mode)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// printScores writes the leaderboard of a mode to stdout.
func printScores(store *storage.Store, mode string) error {
	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	runs, err := store.TopRuns(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ecosort play %s' to set the first high score!\n", mode)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-11s  %-9s  %s\n", "Rank", "Score", "Phase", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-11s  %-9s  %s\n", "----", "-----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-11s  %-9s  %s\n",
			i+1, r.Score, r.Phase, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(mode)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Victories: %d  Best: %d  Average: %.0f\n",
			stats.RunsCount, stats.Victories, stats.HighScore, stats.AvgScore)
	}
	return nil
}
