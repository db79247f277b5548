package domain

import "time"

// FeedItem is a single entry as announced by a feed, before the article
// body has been downloaded. Items arrive in feed order and that order is
// meaningful: ingestion preserves it end to end.
type FeedItem struct {
	// Title is the headline as published in the feed.
	Title string

	// Description is the feed's short summary of the article.
	Description string

	// Link is the canonical URL of the article. It is the natural key
	// for exact deduplication: two items with the same link are the
	// same article.
	Link string

	// Category is the feed's classification of the article.
	Category string

	// PublishedAt is the publication time reported by the feed.
	// Zero if the feed did not supply one.
	PublishedAt time.Time
}

// Document is a stored article: feed metadata plus the full body text
// retrieved from the article page.
//
// Documents are immutable once stored. A re-publication of the same text
// under a new link produces a new Document, never an update; the
// near-duplicate pass exists to surface exactly those cases.
type Document struct {
	// ID is the unique identifier assigned at ingestion time.
	ID string

	// Title is the headline carried over from the feed item.
	Title string

	// Description is the feed summary carried over from the feed item.
	Description string

	// Link is the canonical URL, unique across the store.
	Link string

	// Category is the feed classification.
	Category string

	// Body is the full article text. It is the subject of content
	// fingerprinting.
	Body string

	// PublishedAt is the publication time from the feed, if known.
	PublishedAt time.Time

	// FetchedAt is when the article body was downloaded and stored.
	FetchedAt time.Time
}

// NearDuplicate reports a pair of stored documents whose bodies are
// estimated to be near-identical. It is informational: editorial
// re-publication is a legitimate signal, so near-duplicates are surfaced
// rather than dropped.
type NearDuplicate struct {
	// ALink and BLink identify the pair by canonical URL.
	ALink string
	BLink string

	// ATitle and BTitle are carried along for display.
	ATitle string
	BTitle string

	// Similarity is the estimated Jaccard similarity of the two bodies,
	// in [0, 1].
	Similarity float64
}

// CategoryCount is one bucket of the per-category term aggregation.
type CategoryCount struct {
	Category string
	Count    int
}
