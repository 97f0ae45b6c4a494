package rng

import (
	"sort"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleDegenerate(t *testing.T) {
	t.Parallel()

	// No randomness may be consumed.
	g := New(&Options{Source: errSource{}})

	out, err := ShuffleWith[int](g, nil)
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = ShuffleWith(g, []int{})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = ShuffleWith(g, []int{42})
	require.NoError(t, err)
	assert.Equal(t, []int{42}, out)
}

func TestShuffleInPlace(t *testing.T) {
	t.Parallel()

	// i=2: j=0 swaps a and c, i=1: j=1 keeps b.
	list := []string{"a", "b", "c"}
	out, err := ShuffleWith(withBytes(0x00, 0x01), list)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, out)
	assert.Equal(t, []string{"c", "b", "a"}, list)
	assert.Same(t, &list[0], &out[0])
}

func TestShuffleKeepsElements(t *testing.T) {
	t.Parallel()

	for range 100 {
		list := make([]string, gofakeit.Number(2, 50))
		for i := range list {
			list[i] = gofakeit.Username()
		}
		original := append([]string(nil), list...)

		out, err := Shuffle(list)
		require.NoError(t, err)

		sort.Strings(original)
		sort.Strings(out)
		assert.Equal(t, original, out)
	}
}

func TestShuffleFailure(t *testing.T) {
	t.Parallel()

	list := []int{1, 2, 3, 4}
	_, err := ShuffleWith(New(&Options{Source: errSource{}}), list)
	assert.ErrorIs(t, err, ErrEntropySourceUnavailable)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, list)
}

func TestShufflePermutations(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip()
	}

	// All 6 permutations of 3 elements should be about equally likely.
	const rounds = 6000
	seen := make(map[string]int)
	for range rounds {
		out, err := Shuffle([]string{"a", "b", "c"})
		require.NoError(t, err)
		seen[strings.Join(out, "")]++
	}

	assert.Len(t, seen, 6)
	for perm, count := range seen {
		if count < 800 || count > 1200 {
			t.Errorf("permutation %s is outside of margins: %d", perm, count)
		}
	}
}
