package btreeviz

import (
	"fmt"
	"math/rand"
)

// Sample returns the sample values. Inserted in this order into a tree of
// order 2, they produce a root with two keys and three leaves, one of them
// full.
func Sample() []int {
	return []int{10, 20, 5, 15, 25, 30, 35}
}

// DefaultRandomMax is the upper bound for random values used by the CLI.
const DefaultRandomMax = 100

// RandomValues returns count distinct values between 1 and max (inclusive),
// in the order they were drawn. If rng is nil, a generator seeded from the
// current time is used.
func RandomValues(rng *rand.Rand, count, max int) ([]int, error) {
	if count < 1 || max < 1 || count > max {
		return nil, fmt.Errorf("%w: cannot draw %d distinct values from 1…%d",
			ErrIllegalArguments, count, max)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	seen := make(map[int]struct{}, count)
	values := make([]int, 0, count)
	for len(values) < count {
		v := rng.Intn(max) + 1
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	tracer().Debugf("drew %d random values", count)
	return values, nil
}
