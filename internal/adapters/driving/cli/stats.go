package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show article counts per category",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	ctx := context.Background()

	counts, err := docStore.CategoryCounts(ctx)
	if err != nil {
		return fmt.Errorf("loading category counts: %w", err)
	}
	distinct, err := docStore.DistinctCategories(ctx)
	if err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}

	if len(counts) == 0 {
		cmd.Println("No articles stored yet.")
		return nil
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}

	cmd.Printf("%d article(s) across %d categor(ies):\n\n", total, distinct)
	for _, c := range counts {
		name := c.Category
		if name == "" {
			name = "(uncategorised)"
		}
		cmd.Printf("  %5d  %s\n", c.Count, name)
	}

	return nil
}
