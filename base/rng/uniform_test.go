package rng

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntBounds(t *testing.T) {
	t.Parallel()

	ranges := [][2]int64{
		{0, 1},
		{0, 9},
		{-5, 5},
		{1, 255},
		{0, 256},
		{-1000, -1},
		{0, math.MaxInt64},
		{math.MinInt64, 0},
		{math.MinInt64, math.MaxInt64},
		{math.MaxInt64 - 3, math.MaxInt64},
	}
	for _, r := range ranges {
		for range 1000 {
			v, err := Int(r[0], r[1])
			require.NoError(t, err)
			if v < r[0] || v > r[1] {
				t.Fatalf("%d is outside of [%d, %d]", v, r[0], r[1])
			}
		}
	}
}

func TestIntEqualBounds(t *testing.T) {
	t.Parallel()

	// No randomness may be consumed.
	g := New(&Options{Source: errSource{}})

	v, err := g.Int(5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	f, err := g.UniformInt(5, 5, false, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(5), f)

	f, err = g.UniformInt(1.234, 1.234, true, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.234, f)
}

func TestInvalidRange(t *testing.T) {
	t.Parallel()

	_, err := Int(10, 9)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = UniformInt(1.5, 1.25, true, 2)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = UniformInt(math.NaN(), 1, false, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = UniformInt(0, math.Inf(1), false, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = UniformInt(0, 1e30, false, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Decimal(decimal.RequireFromString("2"), decimal.RequireFromString("1"), 2)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestIntRejectionSampling(t *testing.T) {
	t.Parallel()

	// Range of 10 in one byte: everything from 250 up is rejected.
	src := newByteSource(0xFF, 0xFA, 0x03)
	g := New(&Options{Source: src})
	v, err := g.Int(0, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
	assert.Equal(t, 3, src.read)

	// Modulo and offset.
	v, err = withBytes(0xF9).Int(10, 19)
	require.NoError(t, err)
	assert.Equal(t, int64(19), v)

	// Big endian assembly over two bytes.
	v, err = withBytes(0x01, 0x02).Int(0, 999)
	require.NoError(t, err)
	assert.Equal(t, int64(258), v)

	// Two bytes, limit is 65000.
	v, err = withBytes(0xFD, 0xE8, 0xFD, 0xE7).Int(0, 999)
	require.NoError(t, err)
	assert.Equal(t, int64(64999%1000), v)

	// A range that divides the byte space evenly never rejects.
	v, err = withBytes(0xFF).Int(0, 255)
	require.NoError(t, err)
	assert.Equal(t, int64(255), v)
}

func TestIntFullRange(t *testing.T) {
	t.Parallel()

	v, err := withBytes(0, 0, 0, 0, 0, 0, 0, 0).Int(math.MinInt64, math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), v)

	v, err = withBytes(0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF).Int(math.MinInt64, math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v)

	// Range of 2^63+1 values: everything from 2^63+1 up is rejected.
	n, err := New(&Options{Source: newByteSource(
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0x80, 0, 0, 0, 0, 0, 0, 0,
	)}).Number(1 << 63)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<63), n)
}

func TestRetryCeiling(t *testing.T) {
	t.Parallel()

	src := &repeatSource{value: 0xFF}
	g := New(&Options{Source: src, MaxAttempts: 5})

	_, err := g.Int(0, 9)
	assert.ErrorIs(t, err, ErrEntropySourceUnavailable)
	assert.Equal(t, 5, src.read)
}

func TestSourceFailure(t *testing.T) {
	t.Parallel()

	_, err := New(&Options{Source: errSource{}}).Int(0, 9)
	assert.ErrorIs(t, err, ErrEntropySourceUnavailable)
	assert.ErrorIs(t, err, errBroken)

	// Exhausted source.
	_, err = withBytes().Int(0, 9)
	assert.ErrorIs(t, err, ErrEntropySourceUnavailable)

	// Short read.
	_, err = withBytes(0x01).Int(0, 999)
	assert.ErrorIs(t, err, ErrEntropySourceUnavailable)
}

func TestRejectionMetrics(t *testing.T) {
	t.Parallel()

	draws := drawCounter.Get()
	rejections := rejectionCounter.Get()

	_, err := withBytes(0xFF, 0xFE, 0x00).Int(0, 9)
	require.NoError(t, err)

	// Other tests run in parallel, so only check the lower bound.
	assert.GreaterOrEqual(t, drawCounter.Get(), draws+3)
	assert.GreaterOrEqual(t, rejectionCounter.Get(), rejections+2)
}

func TestDecimal(t *testing.T) {
	t.Parallel()

	lower := decimal.RequireFromString("-1.5")
	upper := decimal.RequireFromString("2.25")
	for range 1000 {
		d, err := Decimal(lower, upper, 2)
		require.NoError(t, err)
		assert.True(t, d.GreaterThanOrEqual(lower), "%s < %s", d, lower)
		assert.True(t, d.LessThanOrEqual(upper), "%s > %s", d, upper)
		assert.True(t, d.Round(2).Equal(d), "%s has more than 2 decimal places", d)
	}

	// 1.00 to 1.05 are scaled to 100 to 105.
	d, err := withBytes(0x04).Decimal(decimal.RequireFromString("1"), decimal.RequireFromString("1.05"), 2)
	require.NoError(t, err)
	assert.Equal(t, "1.04", d.String())

	// Negative places are treated as integer mode.
	d, err = withBytes(0x01).Decimal(decimal.RequireFromString("0"), decimal.RequireFromString("3"), -2)
	require.NoError(t, err)
	assert.Equal(t, "1", d.String())
}

func TestUniformInt(t *testing.T) {
	t.Parallel()

	for range 1000 {
		v, err := UniformInt(0, 1, true, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		assert.InDelta(t, math.Round(v*1000)/1000, v, 1e-9)
	}

	v, err := withBytes(0x04).UniformInt(1, 1.05, true, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.04, v)

	// Without decimal mode, bounds are rounded to integers: 0.4 to 2.6 is 0 to 3.
	v, err = withBytes(0x03).UniformInt(0.4, 2.6, false, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	// Zero decimal places disable decimal mode.
	v, err = withBytes(0x02).UniformInt(0, 2, true, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestDecimalPlacesLimit(t *testing.T) {
	t.Parallel()

	_, err := UniformInt(0.5, 1, true, 1<<30)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = UniformInt(0.5, 1, true, MaxDecimalPlaces+1)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Decimal(decimal.Zero, decimal.NewFromInt(1), 1<<30)
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Must not wrap around to a small number of places.
	if math.MaxInt > math.MaxInt32 {
		wide := int64(1)<<32 + 1
		_, err = UniformInt(0, 1, true, int(wide))
		assert.ErrorIs(t, err, ErrInvalidRange)
	}

	// The maximum itself still works for tiny bounds.
	d, err := withBytes(0x00, 0x07).Decimal(decimal.Zero, decimal.New(1, -340), MaxDecimalPlaces)
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.New(7, -MaxDecimalPlaces)), "got %s", d)
}

func TestIntUniformity(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip()
	}

	const (
		subjects = 10
		draws    = 100000
		// Chi-squared critical value for 9 degrees of freedom at p = 0.0001.
		criticalValue = 33.72
	)

	var results [subjects]int
	for range draws {
		n, err := Int(0, subjects-1)
		require.NoError(t, err)
		results[n]++
	}

	expected := float64(draws) / subjects
	var chiSquared float64
	for _, observed := range results {
		diff := float64(observed) - expected
		chiSquared += diff * diff / expected
	}
	if chiSquared > criticalValue {
		t.Errorf("distribution is not uniform: chi-squared %.2f > %.2f, results: %v", chiSquared, criticalValue, results)
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	assert.False(t, errors.Is(ErrInvalidRange, ErrEntropySourceUnavailable))
}
