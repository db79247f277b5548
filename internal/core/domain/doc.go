// Package domain defines the core business entities for newsdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FeedItem: A feed entry as announced by the feed source
//   - Document: A stored article with its fetched body text
//   - NearDuplicate: A reported pair of similar stored articles
//   - CategoryCount: One bucket of the category aggregation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
