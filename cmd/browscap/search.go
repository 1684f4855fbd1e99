package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxhq/browscap/internal/config"
	"github.com/oxhq/browscap/internal/index"
	"github.com/oxhq/browscap/internal/kv"
	"github.com/oxhq/browscap/internal/kv/libsqlkv"
	"github.com/oxhq/browscap/internal/kv/sqlitekv"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <index-dir> <user-agent>",
		Short: "Look up the best-matching Browscap pattern for a user agent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args[0], args[1])
		},
	}
}

func runSearch(indexDir, ua string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	cfg.IndexDir = indexDir

	store, err := openReadStore(indexDir, cfg)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	defer store.Close()

	pattern, ok, err := index.Search(store, ua)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if !ok {
		fmt.Println("no match")
		return nil
	}
	fmt.Println(pattern)
	return nil
}

func openReadStore(indexDir string, cfg *config.Config) (kv.Store, error) {
	if cfg.UsesRemoteKV() {
		return libsqlkv.Open(cfg.LibsqlURL, cfg.LibsqlAuthToken)
	}
	return sqlitekv.Open(liveDirFor(indexDir) + "/data.kv")
}
