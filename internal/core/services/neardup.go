package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/newsdex/internal/core/domain"
	"github.com/custodia-labs/newsdex/internal/core/ports/driven"
	"github.com/custodia-labs/newsdex/internal/core/ports/driving"
	"github.com/custodia-labs/newsdex/internal/fingerprint"
	"github.com/custodia-labs/newsdex/internal/logger"
)

// Ensure NearDuplicateService implements the interface.
var _ driving.NearDuplicateFinder = (*NearDuplicateService)(nil)

// NearDuplicateService runs the optional post-ingestion similarity pass.
// It fingerprints stored article bodies and reports pairs that look like
// re-publications. Nothing is deleted: a near-duplicate under a new link
// is an editorial signal, not an ingestion error.
type NearDuplicateService struct {
	store         driven.DocumentStore
	extractor     *fingerprint.Extractor
	shingleSize   int
	signatureSize int
}

// NearDuplicateOption configures a NearDuplicateService.
type NearDuplicateOption func(*NearDuplicateService)

// WithShingleSize sets the token width of content shingles.
func WithShingleSize(k int) NearDuplicateOption {
	return func(s *NearDuplicateService) {
		s.shingleSize = k
	}
}

// WithSignatureSize sets the number of MinHash bands per signature.
func WithSignatureSize(h int) NearDuplicateOption {
	return func(s *NearDuplicateService) {
		s.signatureSize = h
	}
}

// WithExtractor overrides the shingle extractor, e.g. to change the
// punctuation set.
func WithExtractor(e *fingerprint.Extractor) NearDuplicateOption {
	return func(s *NearDuplicateService) {
		if e != nil {
			s.extractor = e
		}
	}
}

// NewNearDuplicateService creates a near-duplicate finder over a store.
func NewNearDuplicateService(store driven.DocumentStore, opts ...NearDuplicateOption) *NearDuplicateService {
	s := &NearDuplicateService{
		store:         store,
		extractor:     fingerprint.NewExtractor(),
		shingleSize:   fingerprint.DefaultShingleSize,
		signatureSize: fingerprint.DefaultSignatureSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindNearDuplicates fingerprints the window most recently stored
// articles and returns every pair estimated at or above threshold,
// most similar first.
func (s *NearDuplicateService) FindNearDuplicates(
	ctx context.Context,
	window int,
	threshold float64,
) ([]domain.NearDuplicate, error) {
	if window < 2 {
		return nil, fmt.Errorf("%w: window must cover at least two documents", domain.ErrInvalidInput)
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: threshold must be in [0, 1]", domain.ErrInvalidInput)
	}

	docs, err := s.store.RecentDocuments(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("loading recent documents: %w", err)
	}
	logger.Section("Near-duplicate pass")
	logger.Info("Fingerprinting %d documents (k=%d, bands=%d)", len(docs), s.shingleSize, s.signatureSize)

	sigs := make([]fingerprint.Signature, len(docs))
	for i := range docs {
		set, err := s.extractor.Shingles(docs[i].Body, s.shingleSize)
		if err != nil {
			return nil, fmt.Errorf("shingling %s: %w", docs[i].Link, err)
		}
		sig, err := fingerprint.BuildSignature(set, s.signatureSize)
		if err != nil {
			return nil, fmt.Errorf("fingerprinting %s: %w", docs[i].Link, err)
		}
		sigs[i] = sig
	}

	var pairs []domain.NearDuplicate
	for i := 0; i < len(docs); i++ {
		for j := i + 1; j < len(docs); j++ {
			est, err := fingerprint.EstimateJaccard(sigs[i], sigs[j])
			if err != nil {
				return nil, fmt.Errorf("comparing %s and %s: %w", docs[i].Link, docs[j].Link, err)
			}
			if est < threshold {
				continue
			}
			logger.Debug("Similar pair %s / %s: %.3f", docs[i].Link, docs[j].Link, est)
			pairs = append(pairs, domain.NearDuplicate{
				ALink:      docs[i].Link,
				BLink:      docs[j].Link,
				ATitle:     docs[i].Title,
				BTitle:     docs[j].Title,
				Similarity: est,
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Similarity > pairs[j].Similarity
	})
	return pairs, nil
}
