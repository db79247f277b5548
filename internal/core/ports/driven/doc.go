// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FeedSource: Produces the ordered sequence of feed items
//   - ContentFetcher: Downloads the article body behind a link
//   - DocumentStore: Article persistence, search and aggregation
//
// The fingerprinting engine itself is not a port: it is pure
// computation with no infrastructure behind it and lives in
// internal/fingerprint.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
