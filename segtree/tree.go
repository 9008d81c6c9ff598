package segtree

import "fmt"

// Tree is a segment tree aggregating values of type T with a combine function.
type Tree[T any] struct {
	size     int // requested capacity
	n        int // number of leaves, a power of two >= size
	nodes    []T // 2n-1 nodes, leaves at [n-1, 2n-2]
	identity T
	combine  func(a, b T) T
}

// New creates a tree with room for capacity positions, all set to identity.
// The capacity is rounded up to a power of two.
func New[T any](capacity int, identity T, combine func(a, b T) T) *Tree[T] {
	if combine == nil {
		panic("segtree: nil combine function")
	}
	if capacity < 0 {
		capacity = 0
	}

	n := capacityFor(capacity)
	nodes := make([]T, 2*n-1)
	for i := range nodes {
		nodes[i] = identity
	}

	return &Tree[T]{
		size:     capacity,
		n:        n,
		nodes:    nodes,
		identity: identity,
		combine:  combine,
	}
}

// FromSlice creates a tree sized to len(values) and loads values in order.
func FromSlice[T any](values []T, identity T, combine func(a, b T) T) *Tree[T] {
	t := New(len(values), identity, combine)
	for i, val := range values {
		t.Update(i, val)
	}
	return t
}

// Len returns the capacity the tree was created with.
func (t *Tree[T]) Len() int {
	return t.size
}

// Cap returns the number of leaves, i.e. the capacity rounded up to a power of two.
func (t *Tree[T]) Cap() int {
	return t.n
}

// Identity returns the identity element the tree was created with.
func (t *Tree[T]) Identity() T {
	return t.identity
}

// Get returns the value stored at position.
func (t *Tree[T]) Get(position int) T {
	t.checkPosition(position)
	return t.nodes[position+t.n-1]
}

// Update stores value at position and recomputes all of its ancestors.
func (t *Tree[T]) Update(position int, value T) {
	t.checkPosition(position)

	idx := position + t.n - 1
	t.nodes[idx] = value

	for idx > 0 {
		idx = (idx - 1) / 2 // parent
		t.nodes[idx] = t.combine(t.nodes[2*idx+1], t.nodes[2*idx+2])
	}
}

// Query returns the aggregate of positions in the half-open range [left, right).
// An empty range, or one lying outside [0, Cap()), yields the identity.
// Query panics if left > right.
func (t *Tree[T]) Query(left, right int) T {
	if left > right {
		panic(fmt.Sprintf("segtree: inverted range [%d, %d)", left, right))
	}
	if left == right {
		return t.identity
	}
	return t.query(left, right, 0, 0, t.n)
}

// query descends from node idx which covers [nodeLeft, nodeRight).
func (t *Tree[T]) query(left, right, idx, nodeLeft, nodeRight int) T {
	// disjoint
	if nodeRight <= left || right <= nodeLeft {
		return t.identity
	}
	// fully covered
	if left <= nodeLeft && nodeRight <= right {
		return t.nodes[idx]
	}

	mid := (nodeLeft + nodeRight) / 2

	return t.combine(
		t.query(left, right, 2*idx+1, nodeLeft, mid),
		t.query(left, right, 2*idx+2, mid, nodeRight),
	)
}

// Iter calls a handler for every position in [0, Len()) in order.
// It returns whether all positions were visited.
// The handler can continue the process by returning true or abort with false.
func (t *Tree[T]) Iter(handler func(position int, value T) bool) bool {
	leaves := t.nodes[t.n-1:]
	for i := 0; i < t.size; i++ {
		if !handler(i, leaves[i]) {
			return false
		}
	}
	return true
}

func (t *Tree[T]) checkPosition(position int) {
	if position < 0 || position >= t.n {
		panic(fmt.Sprintf("segtree: position %d out of range [0, %d)", position, t.n))
	}
}
