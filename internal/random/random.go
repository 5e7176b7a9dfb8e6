// Package random holds the injectable uniform random source used by the
// interpreter and the motif renderer.
package random

import "math/rand"

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// New returns a source seeded with seed. Equal seeds give equal streams.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a value in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Upto returns a value in [0, hi).
func Upto(src Source, hi float64) float64 {
	return src.Float64() * hi
}

// Sequence replays fixed values in order, wrapping around. An empty
// sequence always yields 0.
type Sequence struct {
	Values []float64
	next   int
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Calls reports how many values were drawn.
func (s *Sequence) Calls() int { return s.next }
