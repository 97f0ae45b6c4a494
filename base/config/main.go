// Package config holds the configuration of secure random generators and the
// tools using them. Configuration can be loaded from YAML files.
package config

import (
	"time"

	"github.com/safing/securerandom/base/rng"
)

// Possible values of Options.Source.
const (
	SourceOS      = "os"
	SourceFortuna = "fortuna"
)

// Options holds the configuration of a generator.
type Options struct {
	// Source is the entropy source: "os" or "fortuna".
	Source string `yaml:"source"`

	// Cipher is the block cipher of the fortuna source: "aes" or "serpent".
	Cipher string `yaml:"cipher"`

	// MaxAttempts is the maximum number of rejection sampling draws per value.
	MaxAttempts int `yaml:"max_attempts"`

	// ReseedAfterBytes and ReseedAfterSeconds define when the fortuna source
	// reseeds from the OS.
	ReseedAfterBytes   uint64 `yaml:"reseed_after_bytes"`
	ReseedAfterSeconds int    `yaml:"reseed_after_seconds"`

	// LogLevel is the log level of tools: trace, debug, info, warning, error
	// or critical.
	LogLevel string `yaml:"log_level"`
}

// Default returns the default options.
func Default() *Options {
	return &Options{
		Source:             SourceOS,
		Cipher:             rng.CipherAES,
		MaxAttempts:        rng.DefaultMaxAttempts,
		ReseedAfterBytes:   1048576,
		ReseedAfterSeconds: 600,
		LogLevel:           "warning",
	}
}

// NewGenerator creates a new generator from the options.
// The returned close function releases the source and must be called when
// the generator is no longer needed.
func (opts *Options) NewGenerator() (g *rng.Generator, closeFn func() error, err error) {
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	switch opts.Source {
	case SourceFortuna:
		source, err := rng.NewFortunaSource(&rng.FortunaOptions{
			Cipher:           opts.Cipher,
			ReseedAfterBytes: opts.ReseedAfterBytes,
			ReseedAfter:      time.Duration(opts.ReseedAfterSeconds) * time.Second,
		})
		if err != nil {
			return nil, nil, err
		}
		return rng.New(&rng.Options{
			Source:      source,
			MaxAttempts: opts.MaxAttempts,
		}), source.Close, nil

	default:
		return rng.New(&rng.Options{
			Source:      rng.NewOSSource(),
			MaxAttempts: opts.MaxAttempts,
		}), func() error { return nil }, nil
	}
}
