package trie

import (
	"sort"

	"github.com/oxhq/browscap/internal/glob"
)

// Optimize performs the post-build annotation pass: a post-order computation
// of max_length followed by a descending sort of every node's children by
// max_length. It must run exactly once, after all inserts and before the
// trie is handed to the index writer.
//
// max_length deliberately ignores a node's own pattern. Only leaves
// contribute their significant length, and internal nodes take the max over
// their children. A Full node with children therefore reports its deepest
// descendant's length rather than its own; this is intentional (see
// DESIGN.md) and the search-time pruning in package index depends on it.
func Optimize(root *Root) {
	for _, c := range root.Children() {
		optimizeNode(c)
	}
	sortChildren(root.Children())
}

func optimizeNode(n Node) uint32 {
	children := n.Children()
	if len(children) == 0 {
		ml := uint32(glob.SignificantLength(n.Pattern()))
		n.setMaxLength(ml)
		return ml
	}

	var max uint32
	for _, c := range children {
		if m := optimizeNode(c); m > max {
			max = m
		}
	}
	n.setMaxLength(max)
	sortChildren(children)
	return max
}

// sortChildren sorts children by MaxLength descending, stably so that ties
// preserve insertion order.
func sortChildren(children []Node) {
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].MaxLength() > children[j].MaxLength()
	})
}
