package segtree

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// capacityFor returns the smallest power of two >= size (at least 1).
func capacityFor(size int) int {
	if size <= 1 {
		return 1
	}
	if popcount.Count(uint64(size)) == 1 {
		return size // already a power of two
	}
	return 1 << bits.Len(uint(size))
}

