package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/newsdex/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search stored articles",
	Long: `Performs a full-text search across stored article titles and
bodies, ranked best match first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if err := ensureServices(); err != nil {
		return err
	}

	docs, err := docStore.Search(context.Background(), query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, docs)
	}

	return outputSearchTable(cmd, docs)
}

func outputSearchJSON(cmd *cobra.Command, docs []domain.Document) error {
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, docs []domain.Document) error {
	if len(docs) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range docs {
		title := docs[i].Title
		if title == "" {
			title = docs[i].Link
		}

		cmd.Printf("  [%d] %s\n", i+1, title)
		if docs[i].Category != "" {
			cmd.Printf("      Category: %s\n", docs[i].Category)
		}
		cmd.Printf("      %s\n", docs[i].Link)
		if docs[i].Description != "" {
			cmd.Printf("      %s\n", docs[i].Description)
		}
		cmd.Println()
	}

	return nil
}
