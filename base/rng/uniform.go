package rng

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"

	"github.com/shopspring/decimal"

	"github.com/safing/securerandom/base/log"
)

// MaxDecimalPlaces is the highest supported number of decimal places. Any
// nonzero float64 scaled by a higher power of ten leaves the int64 range.
const MaxDecimalPlaces = 343

var (
	half     = decimal.New(5, -1)
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

// Int returns a random integer from min to (incl.) max, uniformly distributed.
func (g *Generator) Int(min, max int64) (int64, error) {
	switch {
	case min == max:
		return min, nil
	case min > max:
		return 0, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRange, min, max)
	}

	// The difference always fits into an uint64, even if the subtraction
	// overflows int64.
	v, err := g.draw(uint64(max - min))
	if err != nil {
		return 0, err
	}
	return int64(uint64(min) + v), nil
}

// Decimal returns a random decimal from min to (incl.) max, uniformly
// distributed over all values with the given number of decimal places.
// The bounds are rounded to the given number of places first, halves are
// rounded up. If places is zero or negative, the result is an integer.
func (g *Generator) Decimal(min, max decimal.Decimal, places int32) (decimal.Decimal, error) {
	switch {
	case min.Equal(max):
		return min, nil
	case min.GreaterThan(max):
		return decimal.Zero, fmt.Errorf("%w: min %s is greater than max %s", ErrInvalidRange, min, max)
	}
	switch {
	case places < 0:
		places = 0
	case places > MaxDecimalPlaces:
		return decimal.Zero, fmt.Errorf("%w: %d decimal places exceed the maximum of %d", ErrInvalidRange, places, MaxDecimalPlaces)
	}

	// Scale to integers.
	scaledMin := min.Shift(places).Add(half).Floor()
	scaledMax := max.Shift(places).Add(half).Floor()
	if scaledMin.LessThan(minInt64) || scaledMax.GreaterThan(maxInt64) {
		return decimal.Zero, fmt.Errorf("%w: %s to %s with %d decimal places exceeds the supported range", ErrInvalidRange, min, max, places)
	}

	v, err := g.Int(scaledMin.IntPart(), scaledMax.IntPart())
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.New(v, -places), nil
}

// UniformInt returns a random number from min to (incl.) max, uniformly
// distributed. If allowDecimal is set and decimalPlaces is positive, the
// result may have up to decimalPlaces decimal places. Otherwise the bounds
// are rounded to the nearest integer and the result is an integer.
func (g *Generator) UniformInt(min, max float64, allowDecimal bool, decimalPlaces int) (float64, error) {
	switch {
	case math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0):
		return 0, fmt.Errorf("%w: bounds must be finite, got %v and %v", ErrInvalidRange, min, max)
	case min == max:
		return min, nil
	case min > max:
		return 0, fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidRange, min, max)
	}

	var places int32
	if allowDecimal && decimalPlaces > 0 {
		if decimalPlaces > MaxDecimalPlaces {
			return 0, fmt.Errorf("%w: %d decimal places exceed the maximum of %d", ErrInvalidRange, decimalPlaces, MaxDecimalPlaces)
		}
		places = int32(decimalPlaces)
	}

	d, err := g.Decimal(decimal.NewFromFloat(min), decimal.NewFromFloat(max), places)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// draw returns a random number from 0 to (incl.) span using rejection
// sampling over the minimal number of random bytes.
func (g *Generator) draw(span uint64) (uint64, error) {
	size := (bits.Len64(span) + 7) / 8

	// Find the largest multiple of span+1 that fits into the byte space.
	// Everything at or above it is rejected.
	var (
		rangeSize = span + 1 // Overflows to zero for the full uint64 range.
		acceptAll bool
		limit     uint64
	)
	switch {
	case rangeSize == 0:
		acceptAll = true
	case size < 8:
		space := uint64(1) << (8 * size)
		limit = space - space%rangeSize
	default:
		// The byte space is 2^64, which does not fit into an uint64.
		excess := (math.MaxUint64%rangeSize + 1) % rangeSize
		if excess == 0 {
			acceptAll = true
		} else {
			limit = -excess
		}
	}

	var buf [8]byte
	for range g.maxAttempts {
		if _, err := io.ReadFull(g.source, buf[8-size:]); err != nil {
			return 0, sourceError(err)
		}
		drawCounter.Inc()

		candidate := binary.BigEndian.Uint64(buf[:])
		if acceptAll || candidate < limit {
			if rangeSize == 0 {
				return candidate, nil
			}
			return candidate % rangeSize, nil
		}

		rejectionCounter.Inc()
		log.Tracef("rng: rejected candidate %d for range [0, %d]", candidate, span)
	}

	log.Warningf("rng: no acceptable value for range [0, %d] after %d attempts", span, g.maxAttempts)
	return 0, fmt.Errorf("%w: no acceptable value after %d attempts", ErrEntropySourceUnavailable, g.maxAttempts)
}

func sourceError(err error) error {
	if errors.Is(err, ErrEntropySourceUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrEntropySourceUnavailable, err)
}

// Int returns a random integer from min to (incl.) max, uniformly distributed.
func Int(min, max int64) (int64, error) {
	return defaultGenerator.Int(min, max)
}

// Decimal returns a random decimal from min to (incl.) max, see Generator.Decimal.
func Decimal(min, max decimal.Decimal, places int32) (decimal.Decimal, error) {
	return defaultGenerator.Decimal(min, max, places)
}

// UniformInt returns a random number from min to (incl.) max, see Generator.UniformInt.
func UniformInt(min, max float64, allowDecimal bool, decimalPlaces int) (float64, error) {
	return defaultGenerator.UniformInt(min, max, allowDecimal, decimalPlaces)
}
