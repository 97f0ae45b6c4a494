package rng

import (
	"errors"
	"io"
)

var errBroken = errors.New("broken source")

// byteSource returns the given bytes and io.EOF afterwards.
type byteSource struct {
	data []byte
	read int
}

func newByteSource(data ...byte) *byteSource {
	return &byteSource{data: data}
}

func (s *byteSource) Read(b []byte) (int, error) {
	if len(s.data) == 0 {
		return 0, io.EOF
	}
	n := copy(b, s.data)
	s.data = s.data[n:]
	s.read += n
	return n, nil
}

// repeatSource returns the same byte forever.
type repeatSource struct {
	value byte
	read  int
}

func (s *repeatSource) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = s.value
	}
	s.read += len(b)
	return len(b), nil
}

// errSource always fails.
type errSource struct{}

func (errSource) Read([]byte) (int, error) {
	return 0, errBroken
}

func withBytes(data ...byte) *Generator {
	return New(&Options{Source: newByteSource(data...)})
}
