package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/newsdex/internal/core/domain"
	"github.com/custodia-labs/newsdex/internal/core/ports/driven"
	"github.com/custodia-labs/newsdex/internal/core/ports/driving"
	"github.com/custodia-labs/newsdex/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// DefaultRecentWindow is how many recently stored links the exact-dedup
// filter checks candidates against.
const DefaultRecentWindow = 100

// DefaultFetchWorkers is how many article downloads run concurrently.
const DefaultFetchWorkers = 4

// IngestService coordinates one ingestion pass: read the feed, drop
// entries whose canonical link is already stored, download the rest and
// persist them.
type IngestService struct {
	feed    driven.FeedSource
	fetcher driven.ContentFetcher
	store   driven.DocumentStore
	window  int
	workers int
}

// IngestOption configures an IngestService.
type IngestOption func(*IngestService)

// WithRecentWindow sets the size of the recent-links existence window.
func WithRecentWindow(n int) IngestOption {
	return func(s *IngestService) {
		if n > 0 {
			s.window = n
		}
	}
}

// WithFetchWorkers sets the article download concurrency.
func WithFetchWorkers(n int) IngestOption {
	return func(s *IngestService) {
		if n > 0 {
			s.workers = n
		}
	}
}

// NewIngestService creates an ingest service over the given collaborators.
func NewIngestService(
	feed driven.FeedSource,
	fetcher driven.ContentFetcher,
	store driven.DocumentStore,
	opts ...IngestOption,
) *IngestService {
	s := &IngestService{
		feed:    feed,
		fetcher: fetcher,
		store:   store,
		window:  DefaultRecentWindow,
		workers: DefaultFetchWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FilterNew returns the candidates whose link is not in existing,
// preserving their relative order. It performs no I/O: the existence
// window is supplied by the caller, which keeps the exact-dedup rule
// independently testable.
func FilterNew(candidates []domain.FeedItem, existing map[string]struct{}) []domain.FeedItem {
	fresh := make([]domain.FeedItem, 0, len(candidates))
	for _, c := range candidates {
		if _, known := existing[c.Link]; known {
			continue
		}
		fresh = append(fresh, c)
	}
	return fresh
}

// Ingest performs a single ingestion pass and reports what happened.
func (s *IngestService) Ingest(ctx context.Context) (*driving.IngestReport, error) {
	logger.Section("Ingest")
	logger.Info("Reading feed %s", s.feed.URL())

	items, err := s.feed.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading feed: %w", err)
	}

	links, err := s.store.RecentLinks(ctx, s.window)
	if err != nil {
		return nil, fmt.Errorf("loading recent links: %w", err)
	}
	existing := make(map[string]struct{}, len(links))
	for _, link := range links {
		existing[link] = struct{}{}
	}

	fresh := FilterNew(items, existing)
	report := &driving.IngestReport{
		FeedItems: len(items),
		Known:     len(items) - len(fresh),
	}
	logger.Info("Feed announced %d items, %d already stored", report.FeedItems, report.Known)

	if len(fresh) == 0 {
		return report, nil
	}

	results := s.downloadAll(ctx, fresh)

	now := time.Now().UTC()
	for i, item := range fresh {
		if results[i].err != nil {
			logger.Warn("Skipping %s: %v", item.Link, results[i].err)
			report.Failed++
			continue
		}
		report.Fetched++

		doc := &domain.Document{
			ID:          uuid.New().String(),
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
			Category:    item.Category,
			Body:        results[i].body,
			PublishedAt: item.PublishedAt,
			FetchedAt:   now,
		}
		if err := s.store.SaveDocument(ctx, doc); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				// Stored by a concurrent run between the existence
				// query and now. Counts as known, not as a failure.
				report.Known++
				continue
			}
			return report, fmt.Errorf("storing %s: %w", item.Link, err)
		}
		report.Stored++
		logger.Debug("Stored %s", item.Link)
	}

	return report, nil
}

// Run ingests repeatedly at the given interval until ctx is cancelled.
// The first pass runs immediately. A failed pass is logged and the loop
// continues; feeds come and go.
func (s *IngestService) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", domain.ErrInvalidInput)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		report, err := s.Ingest(ctx)
		if err != nil {
			logger.Warn("Ingest pass failed: %v", err)
		} else {
			logger.Info("Ingest pass stored %d of %d items", report.Stored, report.FeedItems)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

type fetchResult struct {
	body string
	err  error
}

// downloadAll fetches article bodies across a bounded pool of workers.
// Results are indexed back into candidate order so the ordering
// guarantee of Ingest holds regardless of download completion order.
func (s *IngestService) downloadAll(ctx context.Context, items []domain.FeedItem) []fetchResult {
	results := make([]fetchResult, len(items))

	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			body, err := s.fetcher.Fetch(ctx, items[i].Link)
			results[i] = fetchResult{body: body, err: err}
		}(i)
	}
	wg.Wait()

	return results
}
