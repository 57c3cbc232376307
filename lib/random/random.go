package random

import "math/rand/v2"

// Source is a uniform generator over [0, 1).
type Source interface {
	Float64() float64
}

// NewSeeded returns a PCG backed generator, the same seed always yields the same sequence.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
