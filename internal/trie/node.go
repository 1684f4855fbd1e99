// Package trie implements the in-memory build trie used while constructing
// a Browscap pattern index: a radix-like tree of Full and Partial nodes,
// plus the optimization pass that annotates it for branch-and-bound search
// before it is flattened to the persisted index (see package index).
package trie

import "github.com/oxhq/browscap/internal/properties"

// Node is the tagged union of the two build-trie node variants. Only two
// concrete types implement it: *Full and *Partial. Do not add a third.
type Node interface {
	// Pattern returns this node's absolute pattern, always a prefix of every
	// pattern in its subtree.
	Pattern() string
	// Children returns the node's children, sorted by MaxLength descending
	// once the optimization pass has run.
	Children() []Node
	setChildren(children []Node)
	// MaxLength is the maximum significant length reachable in this node's
	// subtree, valid only after Optimize has run.
	MaxLength() uint32
	setMaxLength(n uint32)
	// IsFull reports whether this node corresponds to an actual catalog
	// pattern (a Full node) as opposed to a synthetic Partial prefix node.
	IsFull() bool
}

// Full represents an actual Browscap pattern and owns its Properties.
type Full struct {
	pattern    string
	children   []Node
	maxLength  uint32
	Properties properties.Properties
}

// NewFull constructs a fresh Full node for insertion. It has no children
// yet; Insert may give it some if existing nodes are adopted beneath it.
func NewFull(pattern string, props properties.Properties) *Full {
	return &Full{pattern: pattern, Properties: props}
}

func (f *Full) Pattern() string         { return f.pattern }
func (f *Full) Children() []Node        { return f.children }
func (f *Full) setChildren(c []Node)    { f.children = c }
func (f *Full) MaxLength() uint32       { return f.maxLength }
func (f *Full) setMaxLength(n uint32)   { f.maxLength = n }
func (f *Full) IsFull() bool            { return true }

// Partial is a synthetic prefix node created when two sibling patterns
// share a proper prefix neither wholly contains. It carries no Properties
// of its own.
type Partial struct {
	pattern   string
	children  []Node
	maxLength uint32
}

func newPartial(pattern string, children []Node) *Partial {
	return &Partial{pattern: pattern, children: children}
}

func (p *Partial) Pattern() string       { return p.pattern }
func (p *Partial) Children() []Node      { return p.children }
func (p *Partial) setChildren(c []Node)  { p.children = c }
func (p *Partial) MaxLength() uint32     { return p.maxLength }
func (p *Partial) setMaxLength(n uint32) { p.maxLength = n }
func (p *Partial) IsFull() bool          { return false }

// Root is the distinguished trie root: it holds children but no pattern of
// its own.
type Root struct {
	children []Node
}

// NewRoot returns an empty build trie.
func NewRoot() *Root {
	return &Root{}
}

func (r *Root) Children() []Node       { return r.children }
func (r *Root) setChildren(c []Node)   { r.children = c }
func (r *Root) MaxLength() uint32      { return maxChildLength(r.children) }

func maxChildLength(children []Node) uint32 {
	var m uint32
	for _, c := range children {
		if c.MaxLength() > m {
			m = c.MaxLength()
		}
	}
	return m
}
