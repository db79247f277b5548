package fingerprint

import (
	"hash/fnv"
	"math"
)

// DefaultSignatureSize is the default number of bands per signature.
// Larger signatures estimate more accurately at the cost of compute.
const DefaultSignatureSize = 128

// emptyBand is the value a band holds before any shingle has been seen.
// A signature consisting entirely of emptyBand values marks an empty
// shingle set.
const emptyBand = math.MaxUint64

// Signature is a fixed-length MinHash sketch: one minimum hash value per
// band. Only signatures of equal length are comparable.
type Signature []uint64

// Empty reports whether the signature was built from an empty shingle
// set, i.e. no band ever observed a value.
func (s Signature) Empty() bool {
	for _, band := range s {
		if band != emptyBand {
			return false
		}
	}
	return true
}

// SignatureBuilder accumulates a MinHash signature one shingle at a
// time. Each Add updates the running minimum of every band without
// revisiting earlier shingles, so document text can be streamed.
//
// A builder is not safe for concurrent use; build one per goroutine.
type SignatureBuilder struct {
	sig   []uint64
	seeds []uint64
}

// NewSignatureBuilder creates a builder producing signatures of the
// given length.
func NewSignatureBuilder(size int) (*SignatureBuilder, error) {
	if size < 1 {
		return nil, ErrInvalidSignatureSize
	}

	b := &SignatureBuilder{
		sig:   make([]uint64, size),
		seeds: make([]uint64, size),
	}
	for i := range b.sig {
		b.sig[i] = emptyBand
		b.seeds[i] = mix64(uint64(i+1) * 0x9e3779b97f4a7c15)
	}
	return b, nil
}

// Add folds one shingle into the signature.
func (b *SignatureBuilder) Add(shingle string) {
	h := fnv.New64a()
	h.Write([]byte(shingle))
	base := h.Sum64()

	for i, seed := range b.seeds {
		if v := mix64(base ^ seed); v < b.sig[i] {
			b.sig[i] = v
		}
	}
}

// AddSet folds every shingle of a set into the signature.
func (b *SignatureBuilder) AddSet(set ShingleSet) {
	for shingle := range set {
		b.Add(shingle)
	}
}

// Signature returns a copy of the current signature. The builder can
// keep accumulating afterwards.
func (b *SignatureBuilder) Signature() Signature {
	out := make(Signature, len(b.sig))
	copy(out, b.sig)
	return out
}

// BuildSignature sketches a whole shingle set at once.
func BuildSignature(set ShingleSet, size int) (Signature, error) {
	b, err := NewSignatureBuilder(size)
	if err != nil {
		return nil, err
	}
	b.AddSet(set)
	return b.Signature(), nil
}

// mix64 is the splitmix64 finaliser. XORing the base hash with a band
// seed and passing it through this mixer gives each band an
// effectively independent hash function over shingle strings.
func mix64(v uint64) uint64 {
	v ^= v >> 30
	v *= 0xbf58476d1ce4e5b9
	v ^= v >> 27
	v *= 0x94d049bb133111eb
	v ^= v >> 31
	return v
}
