package driven

import (
	"context"

	"github.com/custodia-labs/newsdex/internal/core/domain"
)

// FeedSource produces the current entries of a news feed.
type FeedSource interface {
	// URL returns the feed location, for logging and reports.
	URL() string

	// Fetch retrieves the feed and returns its items in feed order.
	// Returns domain.ErrFeedUnavailable (wrapped) when the feed cannot
	// be read or parsed.
	Fetch(ctx context.Context) ([]domain.FeedItem, error)
}

// ContentFetcher downloads the full article text behind a canonical link.
type ContentFetcher interface {
	// Fetch returns the extracted article body for a link.
	// Returns domain.ErrFetchFailed (wrapped) on any failure; it never
	// returns a partial or malformed body alongside a nil error.
	Fetch(ctx context.Context, link string) (string, error)
}
