package hashsplit

import (
	mbits "math/bits"

	"github.com/chmduquesne/rollinghash/bozo32"
)

// windowSize is the number of bytes the rolling checksum's window covers.
// A split decision at position p therefore depends on at most the
// preceding windowSize bytes, satisfying the kernel's locality property.
const windowSize = 64

// DefaultBaseBits is the trailing-bit count the kernel requires before it
// will declare a split point, used when a Config leaves SplitBits at zero.
// Boundaries occur roughly every 2^DefaultBaseBits bytes on random data.
const DefaultBaseBits = 13

// kernel is the boundary finder: a pure function of the window bytes it
// is given. It wraps chmduquesne/rollinghash's bozo32 checksum,
// which started life as an attempt at Rabin-Karp and fell short, but
// nevertheless has the rolling-checksum properties hashsplitting needs.
//
// A kernel is reset and rerun over its window on every call to split, so
// that the boundary it finds depends only on the bytes passed in, never on
// bytes from an earlier call. That keeps the kernel's decisions position-
// insensitive to edits outside the window, which is the property the tree
// built on top of it relies on for stability across backup generations.
type kernel struct {
	rs       *bozo32.Bozo32
	basebits uint
	zeroes   [windowSize]byte
}

func newKernel(basebits uint) *kernel {
	if basebits == 0 {
		basebits = DefaultBaseBits
	}
	return &kernel{rs: bozo32.New(), basebits: basebits}
}

// split scans window for the first position whose rolling checksum has at
// least basebits trailing one-bits. It returns offset = 0, bits = 0 if no
// such position exists in window; otherwise offset is the number of bytes
// consumed up to and including the boundary byte, and bits is the number
// of trailing one-bits found there (always >= basebits).
func (k *kernel) split(window []byte) (offset int, bits uint) {
	k.rs.Reset()
	k.rs.Write(k.zeroes[:])
	for i, c := range window {
		k.rs.Roll(c)
		ones := uint(mbits.TrailingZeros32(^k.rs.Sum32()))
		if ones >= k.basebits {
			return i + 1, ones
		}
	}
	return 0, 0
}

// baseBits reports the minimum trailing-bit count this kernel requires to
// declare a split.
func (k *kernel) baseBits() uint { return k.basebits }
