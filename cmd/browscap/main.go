// Command browscap ingests a Browscap catalog, builds a pattern index from
// it, and serves user-agent lookups against the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "browscap",
		Short: "Build and query a Browscap pattern index",
	}

	root.AddCommand(
		newFetchCmd(),
		newConvertCmd(),
		newSearchCmd(),
		newDiffCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
