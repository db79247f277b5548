// Package fingerprint summarises arbitrary-length article text into a
// fixed-size MinHash sketch supporting approximate similarity comparison
// in constant time and space.
//
// The pipeline has three stages:
//
//   - Extractor: normalises text and slides a window of k consecutive
//     tokens to produce a set of shingles.
//   - SignatureBuilder: feeds each shingle through a family of hash
//     functions, keeping the running minimum per band. Shingles can be
//     streamed one at a time; prior shingles are never revisited.
//   - EstimateJaccard: compares two equal-length signatures and returns
//     the matching-band fraction, an unbiased estimate of the Jaccard
//     similarity of the original shingle sets with standard error on
//     the order of 1/sqrt(bands).
//
// All operations are pure functions of their arguments. There is no
// shared mutable state, so callers may fingerprint documents from
// concurrent goroutines freely.
package fingerprint
