package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/newsdex/internal/adapters/driven/config/file"
	"github.com/custodia-labs/newsdex/internal/adapters/driven/feed/rss"
	"github.com/custodia-labs/newsdex/internal/adapters/driven/fetcher/web"
	"github.com/custodia-labs/newsdex/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/newsdex/internal/core/ports/driven"
	"github.com/custodia-labs/newsdex/internal/core/ports/driving"
	"github.com/custodia-labs/newsdex/internal/core/services"
	"github.com/custodia-labs/newsdex/internal/fingerprint"
	"github.com/custodia-labs/newsdex/internal/logger"
)

// version is set from main via Execute.
var version = "dev"

var (
	configPath string
	verbose    bool
)

// Wired collaborators. Nil until ensureServices runs; tests inject
// their own and skip the real wiring.
var (
	cfg            *file.Config
	docStore       driven.DocumentStore
	contentFetcher driven.ContentFetcher
	feedSources    []driven.FeedSource
	nearDupFinder  driving.NearDuplicateFinder
)

var rootCmd = &cobra.Command{
	Use:   "newsdex",
	Short: "Ingest, index and de-duplicate news articles",
	Long: `Newsdex polls RSS feeds, downloads new articles into a local
full-text index and flags near-duplicate coverage using MinHash
content fingerprints.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.newsdex/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command with the build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	defer closeStore()
	return rootCmd.Execute()
}

// ensureServices wires the real adapters on first use. Commands that
// need no storage (version, help) never trigger it.
func ensureServices() error {
	if docStore != nil {
		return nil
	}

	path := configPath
	if path == "" {
		var err error
		path, err = file.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}

	loaded, err := file.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded
	logger.Debug("Config loaded from %s", path)

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	docStore = store

	contentFetcher = web.NewFetcher(web.WithRequestRate(cfg.Ingest.RequestRate))

	feedSources = feedSources[:0]
	for _, url := range cfg.Feeds {
		feedSources = append(feedSources, rss.NewSource(url))
	}

	nearDupFinder = services.NewNearDuplicateService(docStore,
		services.WithShingleSize(cfg.Fingerprint.ShingleSize),
		services.WithSignatureSize(cfg.Fingerprint.SignatureSize),
		services.WithExtractor(fingerprint.NewExtractor(
			fingerprint.WithPunctuation(cfg.Fingerprint.Punctuation),
		)),
	)

	return nil
}

// buildIngestors creates one ingest service per configured feed.
func buildIngestors() []driving.Ingestor {
	ingestors := make([]driving.Ingestor, 0, len(feedSources))
	for _, source := range feedSources {
		ingestors = append(ingestors, services.NewIngestService(
			source,
			contentFetcher,
			docStore,
			services.WithRecentWindow(cfg.Ingest.RecentWindow),
			services.WithFetchWorkers(cfg.Ingest.FetchWorkers),
		))
	}
	return ingestors
}

func closeStore() {
	if docStore == nil {
		return
	}
	if err := docStore.Close(); err != nil {
		logger.Warn("Closing store: %v", err)
	}
}
