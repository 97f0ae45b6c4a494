package rng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/aead/serpent"
	"github.com/safing/structures/container"
	"github.com/seehuhn/fortuna"
	"github.com/tevino/abool"

	"github.com/safing/securerandom/base/log"
)

const (
	reseedAfterSeconds = 600     // ten minutes
	reseedAfterBytes   = 1048576 // one megabyte

	// maxRequestSize is the maximum amount of data requested from the fortuna
	// generator at once.
	maxRequestSize = 1 << 20
)

// Supported ciphers of the fortuna generator.
const (
	CipherAES     = "aes"
	CipherSerpent = "serpent"
)

// FortunaOptions configure a FortunaSource.
type FortunaOptions struct {
	// Cipher is the block cipher used by the generator: "aes" or "serpent".
	// Defaults to "aes".
	Cipher string

	// ReseedAfterBytes triggers a reseed from the OS after this many bytes
	// were read. Defaults to one megabyte.
	ReseedAfterBytes uint64

	// ReseedAfter triggers a reseed from the OS after this duration passed
	// since the last reseed. Defaults to ten minutes.
	ReseedAfter time.Duration
}

// FortunaSource is a Source backed by a fortuna generator. It is seeded from
// the OS on creation and reseeded from the OS periodically. Additional entropy
// may be supplied with Supply.
type FortunaSource struct {
	lock sync.Mutex

	generator *fortuna.Generator
	ready     *abool.AtomicBool

	pending        *container.Container
	pendingEntropy int

	bytesRead   uint64
	lastFeed    time.Time
	reseedBytes uint64
	reseedAfter time.Duration
}

func newCipherFunc(name string) (func(key []byte) (cipher.Block, error), error) {
	switch name {
	case CipherAES, "":
		return aes.NewCipher, nil
	case CipherSerpent:
		return serpent.NewCipher, nil
	default:
		return nil, fmt.Errorf("unknown or unsupported cipher: %s", name)
	}
}

// NewFortunaSource returns a new fortuna source, seeded from the OS.
func NewFortunaSource(opts *FortunaOptions) (*FortunaSource, error) {
	// Ensure that there are options.
	if opts == nil {
		opts = &FortunaOptions{}
	}

	newCipher, err := newCipherFunc(opts.Cipher)
	if err != nil {
		return nil, err
	}

	f := &FortunaSource{
		generator:   fortuna.NewGenerator(newCipher),
		ready:       abool.New(),
		pending:     container.New(),
		reseedBytes: opts.ReseedAfterBytes,
		reseedAfter: opts.ReseedAfter,
	}
	if f.generator == nil {
		return nil, fmt.Errorf("failed to initialize fortuna generator")
	}
	if f.reseedBytes == 0 {
		f.reseedBytes = reseedAfterBytes
	}
	if f.reseedAfter <= 0 {
		f.reseedAfter = reseedAfterSeconds * time.Second
	}

	// Initial seed.
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.reseed(); err != nil {
		return nil, err
	}

	// mark as ready
	f.ready.Set()
	return f, nil
}

// Read fills b with random data from the fortuna generator.
func (f *FortunaSource) Read(b []byte) (n int, err error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if !f.ready.IsSet() {
		return 0, fmt.Errorf("%w: fortuna source is closed", ErrEntropySourceUnavailable)
	}
	if err := f.checkEntropy(); err != nil {
		return 0, err
	}

	for n < len(b) {
		chunk := len(b) - n
		if chunk > maxRequestSize {
			chunk = maxRequestSize
		}
		n += copy(b[n:], f.generator.PseudoRandomData(uint(chunk)))
	}
	f.bytesRead += uint64(n)
	return n, nil
}

// Close closes the source. All further reads fail.
func (f *FortunaSource) Close() error {
	f.ready.UnSet()
	return nil
}

func (f *FortunaSource) checkEntropy() error {
	if f.bytesRead > f.reseedBytes ||
		time.Since(f.lastFeed) > f.reseedAfter {
		return f.reseed()
	}
	return nil
}

// reseed mixes fresh OS entropy and any pending supplied entropy into the
// generator. The lock must be held.
func (f *FortunaSource) reseed() error {
	// get entropy from OS
	osEntropy := make([]byte, minFeedEntropy/8)
	if _, err := rand.Read(osEntropy); err != nil {
		return fmt.Errorf("%w: could not read entropy from os: %w", ErrEntropySourceUnavailable, err)
	}

	// feed
	f.pending.Append(osEntropy)
	f.generator.Reseed(f.pending.CompileData())
	log.Tracef("rng: reseeded fortuna generator after %d bytes", f.bytesRead)

	// reset
	f.pending = container.New()
	f.pendingEntropy = 0
	f.bytesRead = 0
	f.lastFeed = time.Now()
	return nil
}
