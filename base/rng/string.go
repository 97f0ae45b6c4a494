package rng

import (
	"errors"

	"golang.org/x/exp/slices"
)

// ErrEmptyCharset is returned when a string is requested from an empty charset.
var ErrEmptyCharset = errors.New("empty charset")

var (
	// AlphanumericChars holds the characters a-z, A-Z and 0-9.
	AlphanumericChars = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

	// SpecialChars holds the special characters used by String.
	// Note that "£" and "§" are not ASCII.
	SpecialChars = []rune(`!@#$£%^&*\()_-+=[{]};:<>|./?§`)
)

// String returns a random string of the given length in characters (not
// bytes). Characters are taken from AlphanumericChars and, if
// includeSpecialCharacters is set, from SpecialChars. In that case, the
// string contains a random number of special characters, but at least one.
// Characters may repeat.
func (g *Generator) String(length int, includeSpecialCharacters bool) (string, error) {
	if length <= 0 {
		return "", nil
	}

	alphanumeric, err := ShuffleWith(g, slices.Clone(AlphanumericChars))
	if err != nil {
		return "", err
	}
	special, err := ShuffleWith(g, slices.Clone(SpecialChars))
	if err != nil {
		return "", err
	}

	// Decide how many special characters to use.
	var specialCount int64
	if includeSpecialCharacters {
		specialCount, err = g.Int(1, int64(length))
		if err != nil {
			return "", err
		}
	}

	chars := make([]rune, 0, length)
	for i := range int64(length) {
		pool := alphanumeric
		if i < specialCount {
			pool = special
		}

		picked, err := SampleWith(g, pool, 1)
		if err != nil {
			return "", err
		}
		chars = append(chars, picked[0])
	}

	// Mix special characters into the string.
	if _, err := ShuffleWith(g, chars); err != nil {
		return "", err
	}
	return string(chars), nil
}

// StringFrom returns a random string of the given length in characters, with
// every character chosen uniformly from the given charset. Characters
// represented multiple times in the charset are correspondingly more likely.
func (g *Generator) StringFrom(length int, charset []rune) (string, error) {
	switch {
	case length <= 0:
		return "", nil
	case len(charset) == 0:
		return "", ErrEmptyCharset
	}

	chars := make([]rune, length)
	for i := range chars {
		n, err := g.Int(0, int64(len(charset)-1))
		if err != nil {
			return "", err
		}
		chars[i] = charset[n]
	}
	return string(chars), nil
}

// String returns a random string using the default generator, see
// Generator.String.
func String(length int, includeSpecialCharacters bool) (string, error) {
	return defaultGenerator.String(length, includeSpecialCharacters)
}

// StringFrom returns a random string from the given charset using the default
// generator, see Generator.StringFrom.
func StringFrom(length int, charset []rune) (string, error) {
	return defaultGenerator.StringFrom(length, charset)
}
