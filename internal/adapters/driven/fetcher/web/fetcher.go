// Package web provides the HTTP ContentFetcher.
// It downloads article pages and extracts their paragraph text, with
// proactive rate limiting so a large ingest pass stays polite.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/newsdex/internal/core/domain"
	"github.com/custodia-labs/newsdex/internal/core/ports/driven"
	"github.com/custodia-labs/newsdex/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.ContentFetcher = (*Fetcher)(nil)

const (
	// DefaultTimeout bounds a single article request.
	DefaultTimeout = 30 * time.Second

	// DefaultRequestRate is the proactive throttle in requests per second.
	DefaultRequestRate = 2.0

	// maxBodyBytes caps how much of a page is read. Articles beyond this
	// are truncated, not failed.
	maxBodyBytes = 4 << 20
)

// Fetcher downloads article bodies over HTTP.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithHTTPClient overrides the HTTP client used for article requests.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithRequestRate sets the throttle in requests per second.
func WithRequestRate(rps float64) FetcherOption {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewFetcher creates an article fetcher with the given options.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{Timeout: DefaultTimeout},
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestRate), 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads a page and returns its extracted paragraph text.
// Any transport or status failure returns domain.ErrFetchFailed; a
// Document is never built from a failed download.
func (f *Fetcher) Fetch(ctx context.Context, link string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrFetchFailed, link, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrFetchFailed, link, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrFetchFailed, link, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s: status %d", domain.ErrFetchFailed, link, resp.StatusCode)
	}

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrFetchFailed, link, err)
	}

	body := extractParagraphs(string(page))
	logger.Debug("Fetched %s: %d bytes of paragraph text", link, len(body))
	return body, nil
}
