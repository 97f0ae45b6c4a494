package rng

import (
	"crypto/rand"
	"fmt"
)

type osSource struct{}

// NewOSSource returns a Source reading from the operating system CSPRNG.
func NewOSSource() Source {
	return osSource{}
}

func (osSource) Read(b []byte) (n int, err error) {
	n, err = rand.Read(b)
	if err != nil {
		return n, fmt.Errorf("%w: could not read entropy from os: %w", ErrEntropySourceUnavailable, err)
	}
	return n, nil
}
