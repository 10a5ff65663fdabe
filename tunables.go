package hashsplit

import "math/bits"

// Package defaults. Config lets a caller override the ones that make
// sense to vary (SplitBits, Fanout); the structural ones (chunk size cap,
// read size, per-level fanout cap) are fixed constants.
const (
	// BlobMax is the hard cap on chunk size, in bytes.
	BlobMax = 32768

	// BlobReadSize is the size of a single underlying read.
	BlobReadSize = 1048576

	// MaxPerTree is the per-level fanout cap: a tree node is forced to
	// flush once it accumulates this many children, even absent a
	// high-enough-level split.
	MaxPerTree = 256

	// DefaultFanout is the tree's branching factor. Trailing-bit counts
	// beyond the split threshold are divided by its log2 (fanBits) to
	// produce a tree level. A fanout below 2 is a rejected configuration,
	// not a runtime mode.
	DefaultFanout = 16
)

// fanBits returns log2(fanout). fanout must be a positive power of two;
// Config.fanout enforces that before this is ever called.
func fanBits(fanout int) uint {
	return uint(bits.TrailingZeros(uint(fanout)))
}
