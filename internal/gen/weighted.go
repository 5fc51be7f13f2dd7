package gen

import (
	"errors"
	"math/rand"
)

// ErrInvalidDistribution reports a weight table that cannot produce an
// outcome: empty, or all weights zero or negative.
var ErrInvalidDistribution = errors.New("weighted: invalid distribution")

// Choice pairs an outcome with its relative likelihood.
type Choice[T any] struct {
	Value  T
	Weight int
}

// Weighted is an ordered weight table. Slice order is the iteration order,
// so picks are reproducible for a seeded rand source.
type Weighted[T any] []Choice[T]

// Pick draws one value with probability weight/sum.
func (w Weighted[T]) Pick(rnd *rand.Rand) (T, error) {
	var zero T
	sum := 0
	for _, c := range w {
		if c.Weight > 0 {
			sum += c.Weight
		}
	}
	if len(w) == 0 || sum <= 0 {
		return zero, ErrInvalidDistribution
	}

	n := rnd.Intn(sum) + 1
	for _, c := range w {
		if c.Weight <= 0 {
			continue
		}
		n -= c.Weight
		if n <= 0 {
			return c.Value, nil
		}
	}
	return zero, ErrInvalidDistribution
}
