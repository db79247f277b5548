package fingerprint

import (
	"strings"
)

// DefaultShingleSize is the default number of tokens per shingle.
const DefaultShingleSize = 3

// DefaultPunctuation is the punctuation set stripped before tokenising.
const DefaultPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ShingleSet is an unordered set of token shingles. Order and duplicates
// carry no information, so a map with empty struct values is used.
type ShingleSet map[string]struct{}

// Extractor turns raw text into a set of overlapping token shingles.
// The zero configuration strips DefaultPunctuation.
type Extractor struct {
	punctuation string
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithPunctuation overrides the punctuation set removed during
// normalisation.
func WithPunctuation(set string) ExtractorOption {
	return func(e *Extractor) {
		e.punctuation = set
	}
}

// NewExtractor creates a shingle extractor with the given options.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		punctuation: DefaultPunctuation,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Shingles normalises text and returns the set of all k-token windows,
// each window joined into a single string. A text of n tokens yields at
// most n-k+1 shingles; fewer when duplicate windows collapse, none when
// n < k.
//
// Normalisation removes the configured punctuation set and splits on
// whitespace runs, so consecutive delimiters never produce empty tokens.
// Identical input always yields an identical set.
func (e *Extractor) Shingles(text string, k int) (ShingleSet, error) {
	if k < 1 {
		return nil, ErrInvalidShingleSize
	}

	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(e.punctuation, r) {
			return -1
		}
		return r
	}, text)

	tokens := strings.Fields(stripped)

	set := make(ShingleSet)
	for i := 0; i+k <= len(tokens); i++ {
		set[strings.Join(tokens[i:i+k], "")] = struct{}{}
	}
	return set, nil
}

// Shingles extracts shingles with the default punctuation set.
func Shingles(text string, k int) (ShingleSet, error) {
	return NewExtractor().Shingles(text, k)
}
