package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	// The document store returns it when a canonical link is inserted twice.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFeedUnavailable indicates the feed source could not be read.
	// The feed may be down or the URL misconfigured.
	ErrFeedUnavailable = errors.New("feed unavailable")

	// ErrFetchFailed indicates an article body could not be downloaded.
	// The item is skipped for this run; it is never stored malformed.
	ErrFetchFailed = errors.New("fetch failed")
)
