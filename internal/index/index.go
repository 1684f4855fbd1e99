// Package index defines the persisted, read-optimized counterpart of the
// build trie (package trie) and the writer/searcher that move pattern data
// between the build trie and a kv.Store.
package index

// RootKey is the literal KV key under which the root IndexNode is stored,
// the string "root", not a pattern, prefixed like every other index entry.
const RootKey = "root"

const indexPrefix = "__index__"

// IndexKey returns the KV key for the index node of an absolute pattern.
// For the root, pass RootKey.
func IndexKey(pattern string) []byte {
	return []byte(indexPrefix + pattern)
}

// PropertiesKey returns the KV key under which a Full node's Properties
// record is stored: the pattern itself, verbatim.
func PropertiesKey(pattern string) []byte {
	return []byte(pattern)
}

// Child is one entry in an IndexNode's children list: the child's
// max_length and its pattern delta relative to the owning node (a suffix
// for any non-root node, an absolute pattern for the root's own children).
type Child struct {
	MaxLength uint32 `json:"l"`
	Suffix    string `json:"s"`
}

// Node is the flat, persisted counterpart of a build-trie node.
type Node struct {
	IsFull   bool    `json:"f"`
	Children []Child `json:"c"`
}
