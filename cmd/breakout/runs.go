package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagTUI   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the run journal",
	Long: `Display the most recent journaled runs and overall totals.

Examples:
  breakout runs
  breakout runs --limit 50
  breakout runs --tui
  breakout runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every journaled run")
	runsCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse the journal interactively")
}

func runRuns(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run journal: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run journal cleared.")
		return nil
	}

	if flagTUI {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 100, 30
		}
		return tui.RunJournal(store, width, height)
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout play' or 'breakout sim --save' to record one.")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-9s  %-8s  %-6s  %-8s  %s\n", "Date", "Ticks", "Bricks", "Lost", "Launches", "World")
	fmt.Printf("  %-16s  %-9s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "------", "----", "--------", "-----")

	for _, r := range runs {
		fmt.Printf("  %-16s  %-9d  %-8d  %-6d  %-8d  %dx%d\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Ticks, r.BricksRemoved, r.BallsLost, r.Launches, r.ScreenW, r.ScreenH)
	}

	totals, err := store.Totals()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Total: %d runs, %d ticks, %d bricks removed, %d balls lost\n",
		totals.Runs, totals.Ticks, totals.BricksRemoved, totals.BallsLost)
	return nil
}
