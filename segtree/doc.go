// Package segtree implements an array-backed segment tree over an arbitrary
// associative combine operation with an identity element.
//
// The tree is a complete binary tree of 2n-1 nodes stored in a flat slice, where
// n is the requested capacity rounded up to a power of two:
//
//	                 [0]
//	         [1]             [2]
//	     [3]     [4]     [5]     [6]
//	    [7] [8] [9] [10][11][12][13][14]   <- leaves, positions 0..7
//
// Node i has children 2i+1 and 2i+2 and parent (i-1)/2. Every internal node
// holds combine(left, right) of its children, so a point update touches
// log2(n) ancestors and a half-open range query [left, right) visits O(log n)
// nodes.
//
// The identity must satisfy combine(identity, x) == combine(x, identity) == x.
// It fills padding leaves and is the result of empty or out-of-range queries.
// For a minimum tree that is the largest value of the type, for a sum tree it
// is zero.
//
// A Tree is not safe for concurrent use. Queries may run in parallel with each
// other, but never with an Update, which rewrites the root path in place.
package segtree
