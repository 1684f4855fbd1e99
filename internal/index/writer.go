package index

import (
	"encoding/json"
	"fmt"

	"github.com/oxhq/browscap/internal/kv"
	"github.com/oxhq/browscap/internal/trie"
)

// Write walks the optimized build trie rooted at root and emits one Node
// entry per trie node (root included) plus one Properties entry per Full
// node. If store is a kv.BatchStore the whole walk runs inside a single
// transaction so a crash mid-write never leaves a partial index live;
// otherwise writes land one at a time, which is semantically equivalent.
func Write(store kv.Store, root *trie.Root) error {
	if batcher, ok := store.(kv.BatchStore); ok {
		return batcher.Batch(func(s kv.Store) error {
			return writeAll(s, root)
		})
	}
	return writeAll(store, root)
}

func writeAll(store kv.Store, root *trie.Root) error {
	rootNode := Node{IsFull: false}
	for _, c := range root.Children() {
		rootNode.Children = append(rootNode.Children, Child{
			MaxLength: c.MaxLength(),
			Suffix:    c.Pattern(), // root's children store the absolute pattern
		})
	}
	if err := putNode(store, RootKey, rootNode); err != nil {
		return err
	}

	for _, c := range root.Children() {
		if err := writeNode(store, c); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(store kv.Store, n trie.Node) error {
	own := n.Pattern()
	flat := Node{IsFull: n.IsFull()}
	for _, c := range n.Children() {
		flat.Children = append(flat.Children, Child{
			MaxLength: c.MaxLength(),
			Suffix:    c.Pattern()[len(own):],
		})
	}
	if err := putNode(store, own, flat); err != nil {
		return err
	}

	if full, ok := n.(*trie.Full); ok {
		propsJSON, err := json.Marshal(full.Properties)
		if err != nil {
			return fmt.Errorf("index: marshal properties for %q: %w", own, err)
		}
		if err := store.Put(PropertiesKey(own), propsJSON); err != nil {
			return fmt.Errorf("index: write properties for %q: %w", own, err)
		}
	}

	for _, c := range n.Children() {
		if err := writeNode(store, c); err != nil {
			return err
		}
	}
	return nil
}

func putNode(store kv.Store, pattern string, n Node) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("index: marshal node %q: %w", pattern, err)
	}
	if err := store.Put(IndexKey(pattern), data); err != nil {
		return fmt.Errorf("index: write node %q: %w", pattern, err)
	}
	return nil
}
