package soix

import (
	"cmp"
	"fmt"
	"strings"
)

// Visualizer renders the layered structure of a tree for debugging. It
// reads the arenas level by level from the root and never mutates.
type Visualizer[K cmp.Ordered, V any] struct {
	Tree *BTree[K, V]
}

// Visualize returns one line per tree level: each node's handle followed
// by its separator keys (internal) or entry keys (leaf).
func (vz *Visualizer[K, V]) Visualize() string {
	var (
		b     strings.Builder
		level = []nodeRef{vz.Tree.root}
	)
	for depth := 0; len(level) > 0; depth++ {
		var next []nodeRef
		fmt.Fprintf(&b, "L%d:", depth)
		for _, ref := range level {
			if ref.isLeaf() {
				lf := vz.Tree.lf.at(ref.index())
				fmt.Fprintf(&b, " %s%v", ref, lf.keys[:lf.cnt])
			} else {
				nd := vz.Tree.in.at(ref.index())
				fmt.Fprintf(&b, " %s%v", ref, nd.keys[:nd.cnt-1])
				next = append(next, nd.sons[:nd.cnt]...)
			}
		}
		b.WriteByte('\n')
		level = next
	}
	return b.String()
}
