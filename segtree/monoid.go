package segtree

import "golang.org/x/exp/constraints"

// Number is any type Sum can add.
type Number interface {
	constraints.Integer | constraints.Float
}

func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

func Sum[T Number](a, b T) T {
	return a + b
}

// NewMin creates a range-minimum tree. The identity has to be the largest
// value of T that can ever be stored, e.g. math.MaxInt.
func NewMin[T constraints.Ordered](capacity int, identity T) *Tree[T] {
	return New(capacity, identity, Min[T])
}

func MinFromSlice[T constraints.Ordered](values []T, identity T) *Tree[T] {
	return FromSlice(values, identity, Min[T])
}

// NewMax creates a range-maximum tree. The identity has to be the smallest
// value of T that can ever be stored.
func NewMax[T constraints.Ordered](capacity int, identity T) *Tree[T] {
	return New(capacity, identity, Max[T])
}

func MaxFromSlice[T constraints.Ordered](values []T, identity T) *Tree[T] {
	return FromSlice(values, identity, Max[T])
}

// NewSum creates a range-sum tree with zero as its identity.
func NewSum[T Number](capacity int) *Tree[T] {
	return New(capacity, 0, Sum[T])
}

func SumFromSlice[T Number](values []T) *Tree[T] {
	return FromSlice(values, 0, Sum[T])
}
