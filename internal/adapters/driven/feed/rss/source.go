// Package rss provides the gofeed-backed FeedSource.
// Feed parsing itself is delegated entirely to the library; this adapter
// only maps parsed items onto domain.FeedItem.
package rss

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/custodia-labs/newsdex/internal/core/domain"
	"github.com/custodia-labs/newsdex/internal/core/ports/driven"
	"github.com/custodia-labs/newsdex/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.FeedSource = (*Source)(nil)

// DefaultTimeout bounds a single feed request.
const DefaultTimeout = 30 * time.Second

// Source reads one RSS or Atom feed.
type Source struct {
	url    string
	parser *gofeed.Parser
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithHTTPClient overrides the HTTP client used for feed requests.
func WithHTTPClient(client *http.Client) SourceOption {
	return func(s *Source) {
		if client != nil {
			s.parser.Client = client
		}
	}
}

// NewSource creates a feed source for a URL.
func NewSource(url string, opts ...SourceOption) *Source {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: DefaultTimeout}

	s := &Source{
		url:    url,
		parser: parser,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the feed location.
func (s *Source) URL() string {
	return s.url
}

// Fetch retrieves and parses the feed, returning items in feed order.
func (s *Source) Fetch(ctx context.Context) ([]domain.FeedItem, error) {
	feed, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrFeedUnavailable, s.url, err)
	}
	logger.Debug("Feed %s: %d items", s.url, len(feed.Items))

	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry.Link == "" {
			// An item without a canonical link cannot be deduplicated
			// or fetched; nothing useful can be done with it.
			logger.Warn("Feed %s: skipping item without link (%q)", s.url, entry.Title)
			continue
		}

		item := domain.FeedItem{
			Title:       entry.Title,
			Description: entry.Description,
			Link:        entry.Link,
		}
		if len(entry.Categories) > 0 {
			item.Category = entry.Categories[0]
		}
		if entry.PublishedParsed != nil {
			item.PublishedAt = *entry.PublishedParsed
		}
		items = append(items, item)
	}
	return items, nil
}
