package driven

import (
	"context"

	"github.com/custodia-labs/newsdex/internal/core/domain"
)

// DocumentStore persists ingested articles and answers the queries the
// CLI exposes. Implementations are free to index however they like; the
// core treats search and aggregation results as given.
type DocumentStore interface {
	// SaveDocument stores a new article. Documents are immutable:
	// storing a link that already exists returns domain.ErrAlreadyExists.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetByLink retrieves an article by its canonical link.
	// Returns domain.ErrNotFound if absent.
	GetByLink(ctx context.Context, link string) (*domain.Document, error)

	// RecentLinks returns the canonical links of the most recently
	// fetched articles, newest first, at most limit of them. This is the
	// bounded existence window the ingestion deduplicator filters
	// against.
	RecentLinks(ctx context.Context, limit int) ([]string, error)

	// RecentDocuments returns the most recently fetched articles,
	// newest first, at most limit of them.
	RecentDocuments(ctx context.Context, limit int) ([]domain.Document, error)

	// Search returns articles matching a full-text query, best first.
	Search(ctx context.Context, query string, limit int) ([]domain.Document, error)

	// CategoryCounts returns the number of stored articles per
	// category, largest bucket first.
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)

	// DistinctCategories returns the number of distinct categories.
	DistinctCategories(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
