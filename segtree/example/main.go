package main

import (
	"fmt"
	"math"
	"os"
	"unicode"

	"github.com/aglyzov/go-segtree/segtree"
)

func main() {
	seg := segtree.MinFromSlice([]int{5, 3, 7, 9, 6, 4, 1, 2}, math.MaxInt)

	seg.DebugDump(os.Stdout)

	fmt.Printf("min[0,4) = %v\n", seg.Query(0, 4))
	fmt.Printf("min[4,8) = %v\n", seg.Query(4, 8))
	fmt.Printf("min[2,3) = %v\n", seg.Query(2, 3))

	seg.Update(6, 10)
	fmt.Printf("min[0,8) = %v after update\n", seg.Query(0, 8))

	println("------")

	chars := segtree.MinFromSlice([]rune{'b', 'c', 'a', 'd'}, unicode.MaxRune)
	fmt.Printf("min[1,4) = %q\n", chars.Query(1, 4))

	sums := segtree.SumFromSlice([]int64{1, 2, 3, 4, 5})
	sums.Iter(func(pos int, val int64) bool {
		fmt.Printf("%d: %d\n", pos, val)
		return true
	})
	fmt.Printf("sum[1,4) = %v\n", sums.Query(1, 4))
}
