package trie

// container is satisfied by both *Root and any Node: anything that owns an
// ordered list of children that can be read and replaced wholesale.
type container interface {
	Children() []Node
	setChildren(c []Node)
}

// Insert adds full to the build trie rooted at root. It returns a
// *DuplicatePatternError if a Full node with an identical pattern already
// exists.
//
// State needed during a single insert, the accumulated (score, parent,
// grandparent) triple, lives entirely in this call's locals. None of it
// survives past the call, so concurrent inserts on distinct tries never
// interfere with each other. The trie itself is not safe for concurrent
// mutation; builds assume a single writer.
func Insert(root *Root, full *Full) error {
	newPattern := full.Pattern()
	host, grand, score := locate(root, newPattern)

	if host == nil {
		grand.setChildren(append(grand.Children(), full))
		return nil
	}

	switch h := host.(type) {
	case *Full:
		return attachToFull(h, grand, full, score)
	case *Partial:
		attachToPartial(h, grand, full, score)
		return nil
	default:
		panic("trie: unknown node variant")
	}
}

// locate starts from the root and descends along the single child whose
// pattern shares a positive-length prefix with newPattern beyond the
// already-accumulated score. At most one such child exists per level, so
// the descent is unambiguous. host is nil if no child of the root overlaps
// at all; newPattern becomes a brand-new top-level child in that case.
func locate(root *Root, newPattern string) (host Node, grand container, score int) {
	grand = root
	var cur container = root

	for {
		var next Node
		var inc int
		for _, child := range cur.Children() {
			if n := commonPrefixFrom(child.Pattern(), newPattern, score); n > 0 {
				next, inc = child, n
				break
			}
		}
		if next == nil {
			return host, grand, score
		}
		grand = cur
		host = next
		score += inc
		cur = next
	}
}

// commonPrefixFrom returns how many additional bytes a and b share starting
// at index start.
func commonPrefixFrom(a, b string, start int) int {
	i := start
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i - start
}

func attachToFull(host *Full, grand container, full *Full, score int) error {
	lh, ln := len(host.Pattern()), len(full.Pattern())
	switch {
	case score == lh && score == ln:
		return &DuplicatePatternError{Pattern: full.Pattern()}
	case score == lh && ln > lh:
		host.setChildren(append(host.Children(), full))
		return nil
	default: // score < lh && score < ln: divergent
		p := newPartial(full.Pattern()[:score], []Node{host, full})
		replaceChild(grand, host, p)
		return nil
	}
}

func attachToPartial(host *Partial, grand container, full *Full, score int) {
	lh, ln := len(host.Pattern()), len(full.Pattern())
	switch {
	case score == lh && lh == ln:
		full.setChildren(append(full.Children(), host.Children()...))
		replaceChild(grand, host, full)
	case score == lh && ln > lh:
		host.setChildren(append(host.Children(), full))
	default: // score < lh: divergent split, host keeps its identity
		p := newPartial(full.Pattern()[:score], []Node{host, full})
		replaceChild(grand, host, p)
	}
}

func replaceChild(grand container, old, repl Node) {
	children := grand.Children()
	for i, c := range children {
		if c == old {
			children[i] = repl
			return
		}
	}
}
