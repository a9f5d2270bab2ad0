package tiletap

import (
	"errors"
	"fmt"
	"math/rand"
)

// Errors reported by the round engine. Callers match them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
)

// Sampler draws unique indices from a range without replacement.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler backed by rng. The sampler does not
// synchronize access; it belongs to the single simulation loop.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample returns k distinct integers drawn uniformly from [0, n).
// The order of the result carries no meaning.
// Requires 0 < k < n.
func (s *Sampler) Sample(n, k int) ([]int, error) {
	if k <= 0 || k >= n {
		return nil, fmt.Errorf("tiletap: sample %d of %d: %w", k, n, ErrInvalidArgument)
	}

	// Partial Fisher-Yates: after i swaps the first i slots hold a uniform
	// sample without replacement.
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	out := make([]int, k)
	copy(out, pool[:k])
	return out, nil
}
