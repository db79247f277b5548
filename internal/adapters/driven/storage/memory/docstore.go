// Package memory provides an in-memory DocumentStore.
// It backs the services tests and serves as a store of last resort when
// no data directory is available.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/newsdex/internal/core/domain"
	"github.com/custodia-labs/newsdex/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu     sync.RWMutex
	byLink map[string]domain.Document
	order  []string // links in insertion order, oldest first
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		byLink: make(map[string]domain.Document),
	}
}

// SaveDocument stores a new article. The canonical link is the natural
// key; storing it twice returns domain.ErrAlreadyExists.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byLink[doc.Link]; ok {
		return domain.ErrAlreadyExists
	}
	s.byLink[doc.Link] = *doc
	s.order = append(s.order, doc.Link)
	return nil
}

// GetByLink retrieves an article by its canonical link.
func (s *DocumentStore) GetByLink(_ context.Context, link string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.byLink[link]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// RecentLinks returns the most recently stored links, newest first.
func (s *DocumentStore) RecentLinks(_ context.Context, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := make([]string, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(links) < limit; i-- {
		links = append(links, s.order[i])
	}
	return links, nil
}

// RecentDocuments returns the most recently stored articles, newest first.
func (s *DocumentStore) RecentDocuments(_ context.Context, limit int) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]domain.Document, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(docs) < limit; i-- {
		docs = append(docs, s.byLink[s.order[i]])
	}
	return docs, nil
}

// Search returns articles whose title, description or body contains the
// query, newest first. A linear scan is fine here; ranked full-text
// search is the sqlite store's job.
func (s *DocumentStore) Search(_ context.Context, query string, limit int) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	var docs []domain.Document
	for i := len(s.order) - 1; i >= 0 && len(docs) < limit; i-- {
		doc := s.byLink[s.order[i]]
		haystack := strings.ToLower(doc.Title + " " + doc.Description + " " + doc.Body)
		if strings.Contains(haystack, needle) {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// CategoryCounts returns the article count per category, largest first.
func (s *DocumentStore) CategoryCounts(_ context.Context) ([]domain.CategoryCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, doc := range s.byLink {
		counts[doc.Category]++
	}

	buckets := make([]domain.CategoryCount, 0, len(counts))
	for category, count := range counts {
		buckets = append(buckets, domain.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Category < buckets[j].Category
	})
	return buckets, nil
}

// DistinctCategories returns the number of distinct categories.
func (s *DocumentStore) DistinctCategories(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, doc := range s.byLink {
		seen[doc.Category] = struct{}{}
	}
	return len(seen), nil
}

// Close is a no-op for the in-memory store.
func (s *DocumentStore) Close() error {
	return nil
}
