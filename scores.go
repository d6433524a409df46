//go:build !js

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gonewx/astroshooter/pkg/scoreboard"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `显示分数最高的对局记录。

Examples:
  astroshooter scores
  astroshooter scores --limit 20 --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	rootCmd.AddCommand(scoresCmd)
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagDBPath == "" {
		return fmt.Errorf("run history is disabled (empty --db)")
	}

	store, err := scoreboard.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Top(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Astro Shooter - Top Runs")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %s\n", "----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-8s  %s\n",
			i+1, r.Score, r.Duration.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.Best()
	if err != nil {
		return err
	}
	total, err := store.Count()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d (%d runs)\n", best, total)
	return nil
}
