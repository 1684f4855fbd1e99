package trie

import "fmt"

// DuplicatePatternError is returned when Insert is asked to add a Full node
// whose pattern equals an existing Full node's pattern.
type DuplicatePatternError struct {
	Pattern string
}

func (e *DuplicatePatternError) Error() string {
	return fmt.Sprintf("trie: duplicate pattern: %q", e.Pattern)
}
