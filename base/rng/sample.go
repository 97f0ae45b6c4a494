package rng

import (
	"golang.org/x/exp/slices"
)

// SampleWith returns n elements of the given slice, chosen at random without
// replacement: no position of the slice is returned more than once. The
// given slice is not modified.
//
// If n is zero or negative, or the slice is empty, an empty slice is returned.
// If n is equal to or greater than the length of the slice, the slice itself
// is returned in its original order, without consuming any randomness. Use
// ShuffleWith on a copy if a random order is required.
func SampleWith[T any](g *Generator, list []T, n int) ([]T, error) {
	switch {
	case n <= 0 || len(list) == 0:
		return []T{}, nil
	case n >= len(list):
		return list, nil
	}

	// Track the positions that are still available.
	positions := make([]int, len(list))
	for i := range positions {
		positions[i] = i
	}

	sample := make([]T, 0, n)
	for range n {
		p, err := g.Int(0, int64(len(positions)-1))
		if err != nil {
			return nil, err
		}
		sample = append(sample, list[positions[p]])
		positions = slices.Delete(positions, int(p), int(p)+1)
	}
	return sample, nil
}

// Sample returns n elements of the given slice, chosen at random without
// replacement by the default generator. See SampleWith.
func Sample[T any](list []T, n int) ([]T, error) {
	return SampleWith(defaultGenerator, list, n)
}
