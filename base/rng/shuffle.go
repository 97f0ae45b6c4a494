package rng

// ShuffleWith shuffles the given slice in place using the Fisher-Yates
// algorithm and returns it. Every permutation is equally likely.
// Slices with less than two elements are returned as is, without consuming
// any randomness.
// If an error is returned, the slice may be partially shuffled, but still
// holds the same elements.
func ShuffleWith[T any](g *Generator, list []T) ([]T, error) {
	for i := len(list) - 1; i > 0; i-- {
		j, err := g.Int(0, int64(i))
		if err != nil {
			return list, err
		}
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}

// Shuffle shuffles the given slice in place using the default generator and
// returns it.
func Shuffle[T any](list []T) ([]T, error) {
	return ShuffleWith(defaultGenerator, list)
}
