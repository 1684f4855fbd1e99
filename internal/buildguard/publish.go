package buildguard

import (
	"fmt"
	"os"
)

// StagingDir returns a fresh, not-yet-visible directory inside dir for a
// build to write its KV files into. Only the build writing into it should
// ever see this path; callers publish it with Publish when the build
// succeeds, or discard it with Discard on failure.
//
// dir is the build's work root (where the lock file also lives), never the
// published liveDir passed to Publish: staging must be a sibling of liveDir,
// not an ancestor of it, or the rename in Publish is invalid.
func StagingDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("buildguard: create %q: %w", dir, err)
	}
	staging, err := os.MkdirTemp(dir, ".staging-*")
	if err != nil {
		return "", fmt.Errorf("buildguard: create staging dir under %q: %w", dir, err)
	}
	return staging, nil
}

// Publish atomically swaps staging in as liveDir. It renames any existing
// liveDir out of the way first so the rename-in of staging is itself a
// single atomic directory-entry swap; the displaced previous version is
// removed only after the swap succeeds.
func Publish(staging, liveDir string) error {
	previous := liveDir + ".previous"
	_ = os.RemoveAll(previous)

	hadPrevious := true
	if err := os.Rename(liveDir, previous); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("buildguard: move aside old %q: %w", liveDir, err)
		}
		hadPrevious = false
	}

	if err := os.Rename(staging, liveDir); err != nil {
		if hadPrevious {
			_ = os.Rename(previous, liveDir)
		}
		return fmt.Errorf("buildguard: publish %q: %w", liveDir, err)
	}

	if hadPrevious {
		if err := os.RemoveAll(previous); err != nil {
			return fmt.Errorf("buildguard: remove superseded %q: %w", previous, err)
		}
	}
	return nil
}

// Discard removes a staging directory abandoned by a failed build.
func Discard(staging string) error {
	return os.RemoveAll(staging)
}
