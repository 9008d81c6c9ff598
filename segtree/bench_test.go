package segtree

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

const benchSize = 1 << 16

func BenchmarkTree_Update(b *testing.B) {
	var (
		values = getValues(b.N)
		tr     = NewMin(benchSize, math.MaxInt)
	)

	b.ResetTimer()

	for i, val := range values {
		tr.Update(i%benchSize, val)
	}
}

func BenchmarkTree_Query(b *testing.B) {
	var (
		tr     = MinFromSlice(getValues(benchSize), math.MaxInt)
		bounds = getValues(2 * b.N)
	)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		left, right := bounds[2*i]%benchSize, bounds[2*i+1]%benchSize
		if left > right {
			left, right = right, left
		}
		_ = tr.Query(left, right)
	}
}

func BenchmarkSlice_Min(b *testing.B) {
	var (
		values = getValues(benchSize)
		bounds = getValues(2 * b.N)
	)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		left, right := bounds[2*i]%benchSize, bounds[2*i+1]%benchSize
		if left > right {
			left, right = right, left
		}
		low := math.MaxInt
		for _, val := range values[left:right] {
			if val < low {
				low = val
			}
		}
		_ = low
	}
}

func getValues(total int) []int {
	const seed = 1234567890

	var (
		faker  = gofakeit.New(seed)
		values = make([]int, total)
	)

	for i := range values {
		values[i] = faker.Number(0, math.MaxInt32)
	}

	return values
}
