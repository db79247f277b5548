package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/newsdex/internal/core/domain"
)

// IngestReport summarises one ingestion run.
type IngestReport struct {
	// FeedItems is how many entries the feed announced.
	FeedItems int

	// Known is how many entries were dropped because their canonical
	// link was already stored.
	Known int

	// Fetched is how many article bodies were downloaded.
	Fetched int

	// Failed is how many article downloads failed and were skipped.
	Failed int

	// Stored is how many new documents were persisted.
	Stored int
}

// Ingestor runs feed ingestion: fetch the feed, drop known links,
// download the remaining articles and store them.
type Ingestor interface {
	// Ingest performs a single ingestion pass and reports what happened.
	Ingest(ctx context.Context) (*IngestReport, error)

	// Run ingests repeatedly at the given interval until the context is
	// cancelled. The first pass runs immediately.
	Run(ctx context.Context, interval time.Duration) error
}

// NearDuplicateFinder runs the optional post-ingestion similarity pass
// over stored articles.
type NearDuplicateFinder interface {
	// FindNearDuplicates fingerprints the window most recently stored
	// articles and returns every pair whose estimated body similarity
	// is at or above threshold, most similar first. Pairs are reported,
	// never deleted.
	FindNearDuplicates(ctx context.Context, window int, threshold float64) ([]domain.NearDuplicate, error)
}
