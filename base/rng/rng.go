package rng

import (
	"errors"
	"io"

	"github.com/safing/securerandom/base/metrics"
)

// DefaultMaxAttempts is the default maximum number of draws per value.
// The chance of an intact source getting rejected this many times in a row is
// below 2^-128.
const DefaultMaxAttempts = 128

var (
	// ErrInvalidRange is returned when the lower bound of a range is greater
	// than the upper bound.
	ErrInvalidRange = errors.New("invalid range")

	// ErrEntropySourceUnavailable is returned when no random data could be
	// obtained from the source.
	ErrEntropySourceUnavailable = errors.New("entropy source unavailable")
)

// Source is a source of cryptographically secure random bytes.
// It must either fill the whole buffer or return an error.
type Source interface {
	io.Reader
}

// Generator derives random values from a Source.
// It holds no state besides its configuration and is safe for concurrent use
// if the Source is.
type Generator struct {
	source      Source
	maxAttempts int
}

// Options configure a Generator.
type Options struct {
	// Source is the source of random bytes. Defaults to the OS CSPRNG.
	Source Source

	// MaxAttempts is the maximum number of draws per value before failing
	// with ErrEntropySourceUnavailable. Defaults to DefaultMaxAttempts.
	MaxAttempts int
}

var (
	defaultGenerator = New(nil)

	drawCounter      *metrics.Counter
	rejectionCounter *metrics.Counter
)

func init() {
	var err error
	drawCounter, err = metrics.GetOrCreateCounter("draws_total", nil, &metrics.Options{
		Name: "Rejection Sampling Draws",
	})
	if err != nil {
		panic(err)
	}
	rejectionCounter, err = metrics.GetOrCreateCounter("rejections_total", nil, &metrics.Options{
		Name: "Rejection Sampling Rejections",
	})
	if err != nil {
		panic(err)
	}
}

// New returns a new Generator with the given options.
func New(opts *Options) *Generator {
	// Ensure that there are options.
	if opts == nil {
		opts = &Options{}
	}

	g := &Generator{
		source:      opts.Source,
		maxAttempts: opts.MaxAttempts,
	}
	if g.source == nil {
		g.source = NewOSSource()
	}
	if g.maxAttempts <= 0 {
		g.maxAttempts = DefaultMaxAttempts
	}
	return g
}

// Default returns the default Generator, which uses the OS CSPRNG.
func Default() *Generator {
	return defaultGenerator
}

// Source returns the source of the generator.
func (g *Generator) Source() Source {
	return g.source
}
