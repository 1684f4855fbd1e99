package main

import "path/filepath"

// liveDirFor returns the published KV directory for an index work root.
// It must be a sibling of whatever buildguard.StagingDir creates under the
// same root, never the root itself, so buildguard.Publish's rename-in is a
// same-directory swap rather than a directory being renamed onto its own
// ancestor.
func liveDirFor(indexDir string) string {
	return filepath.Join(indexDir, "current")
}
