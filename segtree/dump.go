package segtree

import (
	"fmt"
	"io"
	"strings"
)

// DebugDump prints the tree one level per line, root first.
func (t *Tree[T]) DebugDump(w io.Writer) {
	var buf strings.Builder

	for start, width := 0, 1; start < len(t.nodes); start, width = start+width, width*2 {
		buf.Reset()
		for i, val := range t.nodes[start : start+width] {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprint(&buf, val)
		}
		buf.WriteByte('\n')
		io.WriteString(w, buf.String())
	}
}
