package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/registry"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs for a mode",
	Long: `Display the best runs and totals for a mode (classic by default).

Examples:
  dash scores
  dash scores endless --limit 20
  dash scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every run and the high score for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	modeID := modeArg(args)

	mode, err := registry.Get(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'dash list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(modeID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all runs for %s.\n", mode.Title)
		return
	}

	runs, err := store.TopRuns(modeID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", mode.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dash play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %s\n", "Rank", "Score", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %s\n", "----", "-----", "------", "----", "----")

	for i, run := range runs {
		fmt.Printf("  %-4d  %-8d  %-7s  %-6s  %s\n",
			i+1, run.Score, run.Outcome, clock(run.Duration), run.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.ModeStats(modeID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Wins: %d   Average: %.0f   Played: %s\n",
		stats.Best, stats.Runs, stats.Wins, stats.Average, clock(stats.TotalTime))
}

// clock formats a duration as m:ss.
func clock(d time.Duration) string {
	s := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
