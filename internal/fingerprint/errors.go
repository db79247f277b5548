package fingerprint

import "errors"

// Package-level errors for fingerprinting operations.
// Both indicate caller configuration bugs, never transient conditions.
var (
	// ErrInvalidShingleSize indicates a shingle width below 1.
	ErrInvalidShingleSize = errors.New("shingle size must be at least 1")

	// ErrInvalidSignatureSize indicates a signature length below 1.
	ErrInvalidSignatureSize = errors.New("signature size must be at least 1")

	// ErrSignatureMismatch indicates an attempt to compare signatures of
	// different lengths, i.e. signatures built with different
	// configurations. Such a comparison is undefined and always rejected.
	ErrSignatureMismatch = errors.New("signatures have different lengths")
)
