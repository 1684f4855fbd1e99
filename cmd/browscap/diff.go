package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/browscap/internal/catalogdiff"
	"github.com/oxhq/browscap/internal/ingest"
	"github.com/oxhq/browscap/internal/properties"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old.csv> <new.csv>",
		Short: "Summarize added, removed, and changed patterns between two catalogs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}
}

func runDiff(oldPath, newPath string) error {
	oldRecords, err := readCatalog(oldPath)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	newRecords, err := readCatalog(newPath)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	res := catalogdiff.Compare(oldRecords, newRecords)

	fmt.Printf("added: %d, removed: %d, changed: %d\n", len(res.Added), len(res.Removed), len(res.Changed))
	for _, p := range res.Added {
		fmt.Printf("+ %s\n", p)
	}
	for _, p := range res.Removed {
		fmt.Printf("- %s\n", p)
	}
	for _, p := range res.Changed {
		fmt.Printf("~ %s\n%s\n", p, res.Diffs[p])
	}
	return nil
}

func readCatalog(path string) ([]properties.Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	return ingest.Catalog(f)
}
