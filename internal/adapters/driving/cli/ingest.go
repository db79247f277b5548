package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/newsdex/internal/core/ports/driving"
	"github.com/custodia-labs/newsdex/internal/logger"
)

var ingestInterval time.Duration

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch new articles from the configured feeds",
	Long: `Reads every configured RSS feed, drops entries that are already
stored and downloads the rest into the local index.

With --interval the command keeps polling until interrupted.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().DurationVarP(&ingestInterval, "interval", "i", 0, "keep polling at this interval (0 runs once)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if len(feedSources) == 0 {
		return errors.New("no feeds configured; add feed URLs to the config file")
	}

	ingestors := buildIngestors()

	if ingestInterval > 0 {
		return pollFeeds(cmd, ingestors)
	}

	ctx := context.Background()
	total := driving.IngestReport{}
	for i, ingestor := range ingestors {
		report, err := ingestor.Ingest(ctx)
		if err != nil {
			logger.Warn("Feed %s: %v", feedSources[i].URL(), err)
			cmd.Printf("Feed %s failed: %v\n", feedSources[i].URL(), err)
			continue
		}
		total.FeedItems += report.FeedItems
		total.Known += report.Known
		total.Fetched += report.Fetched
		total.Failed += report.Failed
		total.Stored += report.Stored
	}

	printReport(cmd, &total)
	return nil
}

func pollFeeds(cmd *cobra.Command, ingestors []driving.Ingestor) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Polling %d feed(s) every %s. Ctrl-C to stop.\n", len(ingestors), ingestInterval)

	var wg sync.WaitGroup
	for _, ingestor := range ingestors {
		wg.Add(1)
		go func(ing driving.Ingestor) {
			defer wg.Done()
			if err := ing.Run(ctx, ingestInterval); err != nil {
				logger.Warn("Feed loop stopped: %v", err)
			}
		}(ingestor)
	}
	wg.Wait()

	cmd.Println("Stopped.")
	return nil
}

func printReport(cmd *cobra.Command, report *driving.IngestReport) {
	cmd.Printf("Feed items:   %d\n", report.FeedItems)
	cmd.Printf("Already seen: %d\n", report.Known)
	cmd.Printf("Fetched:      %d\n", report.Fetched)
	if report.Failed > 0 {
		cmd.Printf("Failed:       %d\n", report.Failed)
	}
	cmd.Printf("Stored:       %d\n", report.Stored)
	if report.Stored == 0 {
		cmd.Printf("Nothing new across %d feed(s).\n", len(feedSources))
	}
}
