package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

const snapshotGlob = "browscap-*.csv"

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <url> <dest-dir>",
		Short: "Download the upstream catalog CSV to a rotated snapshot file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(args[0], args[1])
		},
	}
}

func runFetch(url, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("fetch: create %q: %w", destDir, err)
	}

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("fetch: GET %q: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch: GET %q: unexpected status %s", url, resp.Status)
	}

	snapshot := filepath.Join(destDir, fmt.Sprintf("browscap-%s.csv", time.Now().UTC().Format("20060102T150405Z")))
	f, err := os.Create(snapshot)
	if err != nil {
		return fmt.Errorf("fetch: create %q: %w", snapshot, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("fetch: write %q: %w", snapshot, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("fetch: close %q: %w", snapshot, err)
	}

	fmt.Println(snapshot)
	return nil
}

// latestSnapshot returns the most recently named file under dir matching
// snapshotGlob, relying on the fact that the timestamped filename sorts
// lexically the same as chronologically.
func latestSnapshot(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("fetch: read %q: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		matched, err := doublestar.PathMatch(snapshotGlob, e.Name())
		if err != nil {
			return "", fmt.Errorf("fetch: match %q: %w", e.Name(), err)
		}
		if matched {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("fetch: no snapshot matching %q in %q", snapshotGlob, dir)
	}
	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1]), nil
}
