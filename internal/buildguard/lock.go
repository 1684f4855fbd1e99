// Package buildguard serializes index builds against one destination
// directory and publishes a finished build atomically, so a crash mid-build
// never leaves a half-written index live for readers.
package buildguard

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Lock is an advisory, process-exclusive lock over a single destination
// directory, held for the duration of one build. Unlike the lockfile-plus-
// PID-liveness-check scheme it is adapted from, it uses flock(2) directly:
// the lock is released automatically if the holding process dies, so there
// is no stale-lock detection to get wrong.
type Lock struct {
	file *os.File
	path string
}

// Acquire takes the build lock for dir, creating dir and a ".lock" file in
// it if needed. It returns immediately with an error if the lock is already
// held by another process. Builds do not queue behind one another.
func Acquire(dir string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("buildguard: create %q: %w", dir, err)
	}

	path := filepath.Join(dir, ".lock")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("buildguard: open lock file %q: %w", path, err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("buildguard: %q is locked by another build: %w", dir, err)
	}

	fmt.Fprintf(f, "%d\n", os.Getpid())

	return &Lock{file: f, path: path}, nil
}

// Release drops the lock. It does not remove the lock file: the file itself
// is just a lockable handle, and removing it would race a concurrent
// Acquire that just opened it.
func (l *Lock) Release() error {
	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		l.file.Close()
		return fmt.Errorf("buildguard: unlock %q: %w", l.path, err)
	}
	return l.file.Close()
}
