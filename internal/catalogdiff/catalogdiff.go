// Package catalogdiff compares two catalog ingests and reports which
// patterns were added, removed, or changed between them.
package catalogdiff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/oxhq/browscap/internal/properties"
)

// Result is the outcome of comparing an old and new catalog.
type Result struct {
	Added   []string
	Removed []string
	Changed []string

	// Diffs maps a changed pattern to a unified text diff of its serialized
	// fields, old vs new.
	Diffs map[string]string
}

// Compare reports the difference between old and new, keyed by pattern
// (Properties.PropertyName). A pattern present in both with identical
// serialized fields is neither added, removed, nor changed.
func Compare(old, new []properties.Properties) Result {
	oldByPattern := indexByPattern(old)
	newByPattern := indexByPattern(new)

	res := Result{Diffs: make(map[string]string)}

	for pattern := range newByPattern {
		if _, ok := oldByPattern[pattern]; !ok {
			res.Added = append(res.Added, pattern)
		}
	}
	for pattern := range oldByPattern {
		if _, ok := newByPattern[pattern]; !ok {
			res.Removed = append(res.Removed, pattern)
		}
	}
	for pattern, newProps := range newByPattern {
		oldProps, ok := oldByPattern[pattern]
		if !ok {
			continue
		}
		oldText, newText := serialize(oldProps), serialize(newProps)
		if oldText == newText {
			continue
		}
		res.Changed = append(res.Changed, pattern)
		res.Diffs[pattern] = unifiedDiff(pattern, oldText, newText)
	}

	sort.Strings(res.Added)
	sort.Strings(res.Removed)
	sort.Strings(res.Changed)
	return res
}

func indexByPattern(props []properties.Properties) map[string]properties.Properties {
	m := make(map[string]properties.Properties, len(props))
	for _, p := range props {
		m[p.PropertyName] = p
	}
	return m
}

// serialize renders a Properties record as one "Field: value" line per
// field, in catalog column order, so unrelated field reordering can never
// manifest as a spurious diff.
func serialize(p properties.Properties) string {
	fields := properties.FieldOrder()
	values := p.Values()
	var b strings.Builder
	for i, field := range fields {
		fmt.Fprintf(&b, "%s: %s\n", field, values[i])
	}
	return b.String()
}

func unifiedDiff(pattern, oldText, newText string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldText),
		B:        difflib.SplitLines(newText),
		FromFile: pattern + " (old)",
		ToFile:   pattern + " (new)",
		Context:  1,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("--- %s (old)\n+++ %s (new)\n@@ changes @@\n%d bytes -> %d bytes",
			pattern, pattern, len(oldText), len(newText))
	}
	return text
}
