package fingerprint

// EstimateJaccard estimates the Jaccard similarity of the two shingle
// sets behind a pair of signatures as the fraction of matching bands.
//
// Signatures of different lengths were built with different
// configurations and cannot be compared; that returns
// ErrSignatureMismatch. Signatures derived from empty sets are resolved
// by convention rather than band arithmetic: two empty-derived
// signatures are identical (1.0), and an empty-derived signature shares
// nothing with a non-empty one (0.0).
func EstimateJaccard(a, b Signature) (float64, error) {
	if len(a) < 1 || len(b) < 1 {
		return 0, ErrInvalidSignatureSize
	}
	if len(a) != len(b) {
		return 0, ErrSignatureMismatch
	}

	aEmpty, bEmpty := a.Empty(), b.Empty()
	switch {
	case aEmpty && bEmpty:
		return 1.0, nil
	case aEmpty || bEmpty:
		return 0.0, nil
	}

	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(a)), nil
}
