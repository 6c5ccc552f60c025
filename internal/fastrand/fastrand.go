// Package fastrand provides a fast, non-cryptographic xorshift64 source
// used by the tick generator hot path.
//
// The sequence is NOT cryptographically secure and must never be used for
// anything security-sensitive. Its only job is cheap, reproducible noise.
package fastrand

import (
	"errors"
	"sync/atomic"
)

// ErrInvalidRange is returned when a bounded draw is requested with max < min.
var ErrInvalidRange = errors.New("fastrand: invalid range (max < min)")

// Source is a xorshift64 generator. State reads and writes go through an
// atomic, so concurrent readers observe whole values, but the source is
// designed for a single writer: concurrent draws may repeat values.
type Source struct {
	state atomic.Uint64
}

// NewSource seeds a source. A zero seed would lock xorshift at zero forever,
// so it is silently replaced.
func NewSource(seed uint64) *Source {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	s := &Source{}
	s.state.Store(seed)
	return s
}

// Uint64 advances the xorshift64 recurrence and returns the new state.
func (s *Source) Uint64() uint64 {
	x := s.state.Load()
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	s.state.Store(x)
	return x
}

// Float64 returns a value in [min, max), built from the low 24 bits of the
// next draw divided by 2^24.
func (s *Source) Float64(min, max float64) float64 {
	r := s.Uint64()
	normalized := float64(r&0xFFFFFF) / 16777216.0
	return min + normalized*(max-min)
}

// UintRange returns a value in [min, max] inclusive. Unlike the float path
// an inverted range cannot be rescaled away, so it fails explicitly.
func (s *Source) UintRange(min, max uint32) (uint32, error) {
	if max < min {
		return 0, ErrInvalidRange
	}
	return min + uint32(s.Uint64()%uint64(max-min+1)), nil
}
