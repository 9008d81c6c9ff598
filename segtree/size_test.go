package segtree

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityFor(t *testing.T) {
	t.Parallel()

	for size := -1; size <= 4100; size++ {
		n := capacityFor(size)

		assert.Equal(t, 1, bits.OnesCount(uint(n)), "size %d -> %d", size, n)
		assert.GreaterOrEqual(t, n, size)
		if n > 1 {
			assert.Less(t, n/2, size, "size %d -> %d is not the smallest", size, n)
		}
	}
}
