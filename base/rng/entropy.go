package rng

import (
	"encoding/binary"
)

const (
	minFeedEntropy = 256
)

// Supply supplies additional entropy to the fortuna source. The data is mixed
// into the generator at the next reseed. As soon as the supplied data is
// estimated to carry at least 256 bits of entropy, the generator is reseeded
// immediately.
// The entropy parameter is the estimated amount of entropy in bits.
func (f *FortunaSource) Supply(data []byte, entropy int) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.pending.Append(data)
	f.pendingEntropy += entropy
	if f.pendingEntropy >= minFeedEntropy {
		return f.reseed()
	}
	return nil
}

// SupplyAsInt supplies entropy to the fortuna source, see Supply.
func (f *FortunaSource) SupplyAsInt(n int64, entropy int) error {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(n))
	return f.Supply(b, entropy)
}

