// Package rng provides cryptographically secure randomness primitives.
//
// All values are derived from a Source of secure random bytes. By default this
// is the operating system CSPRNG (`crypto/rand`). Alternatively, a fortuna
// CSPRNG (github.com/seehuhn/fortuna) can be used, which is seeded and
// periodically reseeded from the operating system and can be fed with
// additional entropy.
//
// On top of the byte source, the package provides unbiased integer and decimal
// range sampling (rejection sampling, no modulo bias), Fisher-Yates shuffling,
// sampling without replacement and random string generation.
//
// The package level functions use a default Generator backed by the operating
// system. Use New to create a Generator with a different Source.
package rng
