package demographics

import "math/rand"

// Rand supplies the uniform samples drawn for stochastic rounding.
// *math/rand.Rand satisfies it; tests inject a seeded source for
// reproducible breakdowns.
type Rand interface {
	Float64() float64
}

// globalRand adapts the process-wide math/rand source. Callers running
// allocations concurrently should pass one source per goroutine instead.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
