package wave

import (
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Labeled ids live in the high-bit namespace so they can never collide
// with sequence ids.
const symbolBit = uint64(1) << 63

var idCounter atomic.Uint64

// NextID returns a process-unique sequence id for an unlabeled signal.
func NextID() uint64 {
	return idCounter.Add(1)
}

// Symbol derives a stable id from a label. The same label always maps to
// the same id, across runs, which keeps graph snapshots comparable.
func Symbol(label string) uint64 {
	return xxhash.Sum64String(label) | symbolBit
}
