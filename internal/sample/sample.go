// Package sample produces the random series visualized by graph panels.
// The generator is an injected capability rather than an ambient global so
// rendering code can be tested against deterministic data.
package sample

import "math/rand/v2"

// Source produces ordered series of values in [0, 1).
type Source interface {
	// Series returns n independent values, each in [0, 1).
	// n <= 0 returns an empty series.
	Series(n int) []float64
}

type pcgSource struct {
	rng *rand.Rand
}

// New returns a Source backed by a PCG generator with a random seed.
func New() Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a Source that replays the same sequence for the same
// seed. Intended for tests and reproducible renders.
func NewSeeded(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *pcgSource) Series(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.Float64()
	}
	return out
}

// Fixed returns a Source that cycles through the given values, for tests
// that need exact bar heights. No values means all zeros.
func Fixed(values ...float64) Source {
	return fixedSource(values)
}

type fixedSource []float64

func (f fixedSource) Series(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if len(f) == 0 {
		return out
	}
	for i := range out {
		out[i] = f[i%len(f)]
	}
	return out
}
