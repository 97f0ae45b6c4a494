package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/safing/securerandom/base/log"
	"github.com/safing/securerandom/base/rng"
)

// ErrInvalidOptions is returned when options fail validation.
var ErrInvalidOptions = errors.New("invalid options")

// ValidationError describes a single invalid option.
type ValidationError struct {
	Option  string
	Message string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Option, ve.Message)
}

// Is makes all validation errors match ErrInvalidOptions.
func (ve *ValidationError) Is(target error) bool {
	return target == ErrInvalidOptions
}

// Validate checks all options and returns all found problems at once.
func (opts *Options) Validate() error {
	var merr *multierror.Error

	switch opts.Source {
	case SourceOS, SourceFortuna:
	default:
		merr = multierror.Append(merr, &ValidationError{
			Option:  "source",
			Message: fmt.Sprintf("unknown source %q, must be %q or %q", opts.Source, SourceOS, SourceFortuna),
		})
	}

	switch opts.Cipher {
	case rng.CipherAES, rng.CipherSerpent:
	default:
		merr = multierror.Append(merr, &ValidationError{
			Option:  "cipher",
			Message: fmt.Sprintf("unknown cipher %q, must be %q or %q", opts.Cipher, rng.CipherAES, rng.CipherSerpent),
		})
	}

	if opts.MaxAttempts <= 0 {
		merr = multierror.Append(merr, &ValidationError{
			Option:  "max_attempts",
			Message: fmt.Sprintf("must be positive, got %d", opts.MaxAttempts),
		})
	}

	if opts.ReseedAfterSeconds <= 0 {
		merr = multierror.Append(merr, &ValidationError{
			Option:  "reseed_after_seconds",
			Message: fmt.Sprintf("must be positive, got %d", opts.ReseedAfterSeconds),
		})
	}

	if opts.ReseedAfterBytes == 0 {
		merr = multierror.Append(merr, &ValidationError{
			Option:  "reseed_after_bytes",
			Message: "must be positive",
		})
	}

	if opts.LogLevel != "" && log.ParseLevel(opts.LogLevel) == 0 {
		merr = multierror.Append(merr, &ValidationError{
			Option:  "log_level",
			Message: fmt.Sprintf("unknown log level %q", opts.LogLevel),
		})
	}

	return merr.ErrorOrNil()
}
