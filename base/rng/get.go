package rng

import (
	"fmt"
	"io"
)

// Reader provides a global instance to read from the default generator.
var Reader io.Reader = reader{}

// reader provides an io.Reader interface.
type reader struct{}

// Read implements the io.Reader interface.
func (r reader) Read(b []byte) (n int, err error) {
	return Read(b)
}

// Read fills b with random data from the source.
func (g *Generator) Read(b []byte) (n int, err error) {
	n, err = io.ReadFull(g.source, b)
	if err != nil {
		return n, sourceError(err)
	}
	return n, nil
}

// Bytes allocates a new byte slice of given length and fills it with random data.
func (g *Generator) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid byte count %d", n)
	}

	b := make([]byte, n)
	if _, err := g.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Number returns a random number from 0 to (incl.) max.
func (g *Generator) Number(max uint64) (uint64, error) {
	if max == 0 {
		return 0, nil
	}
	return g.draw(max)
}

// Read reads random bytes from the default generator into the supplied byte slice.
func Read(b []byte) (n int, err error) {
	return defaultGenerator.Read(b)
}

// Bytes allocates a new byte slice of given length and fills it with random
// data from the default generator.
func Bytes(n int) ([]byte, error) {
	return defaultGenerator.Bytes(n)
}

// Number returns a random number from 0 to (incl.) max.
func Number(max uint64) (uint64, error) {
	return defaultGenerator.Number(max)
}
