// Package sample wraps the random source used by the fixture generators so callers can pin a seed.
package sample

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Source is the subset of *math/rand.Rand the generators draw from.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// New returns a deterministic source for the given seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Seed derives a fresh seed from system entropy, falling back to the clock.
func Seed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	// keep it positive so it round-trips through flags and YAML unchanged
	return int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
}

// IntBetween draws uniformly from [lo, hi], both inclusive.
func IntBetween(r Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Uniform draws a float in [lo, hi).
func Uniform(r Source, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Bool is a fair coin.
func Bool(r Source) bool { return r.Intn(2) == 1 }

// Pick returns a uniformly chosen element of xs. xs must not be empty.
func Pick[T any](r Source, xs []T) T { return xs[r.Intn(len(xs))] }
