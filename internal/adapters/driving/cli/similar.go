package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/newsdex/internal/core/services"
)

var (
	similarThreshold float64
	similarWindow    int
	similarJSON      bool
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Report near-duplicate articles",
	Long: `Fingerprints the most recently stored articles with MinHash and
reports pairs whose estimated body similarity meets the threshold.
Re-published stories surface here even when every link is distinct.`,
	RunE: runSimilar,
}

func init() {
	similarCmd.Flags().Float64VarP(&similarThreshold, "threshold", "t", 0, "similarity threshold in [0, 1] (default from config)")
	similarCmd.Flags().IntVarP(&similarWindow, "window", "w", services.DefaultRecentWindow, "how many recent articles to compare")
	similarCmd.Flags().BoolVar(&similarJSON, "json", false, "output pairs as JSON")
	rootCmd.AddCommand(similarCmd)
}

func runSimilar(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	threshold := similarThreshold
	if threshold == 0 && cfg != nil {
		threshold = cfg.Fingerprint.Threshold
	}

	pairs, err := nearDupFinder.FindNearDuplicates(context.Background(), similarWindow, threshold)
	if err != nil {
		return fmt.Errorf("similarity pass failed: %w", err)
	}

	if similarJSON {
		data, err := json.MarshalIndent(pairs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal pairs: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(pairs) == 0 {
		cmd.Printf("No pairs at or above %.2f in the last %d article(s).\n", threshold, similarWindow)
		return nil
	}

	cmd.Printf("%d near-duplicate pair(s):\n\n", len(pairs))
	for _, p := range pairs {
		cmd.Printf("  %.3f  %s\n", p.Similarity, p.ATitle)
		cmd.Printf("         %s\n", p.ALink)
		cmd.Printf("         %s\n", p.BTitle)
		cmd.Printf("         %s\n", p.BLink)
		cmd.Println()
	}

	return nil
}
