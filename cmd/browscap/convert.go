package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/datatypes"

	"github.com/oxhq/browscap/internal/buildguard"
	"github.com/oxhq/browscap/internal/buildlog"
	"github.com/oxhq/browscap/internal/config"
	"github.com/oxhq/browscap/internal/index"
	"github.com/oxhq/browscap/internal/ingest"
	"github.com/oxhq/browscap/internal/kv"
	"github.com/oxhq/browscap/internal/kv/libsqlkv"
	"github.com/oxhq/browscap/internal/kv/sqlitekv"
	"github.com/oxhq/browscap/internal/trie"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <catalog.csv-or-dir> <index-dir>",
		Short: "Ingest a catalog, build a pattern index, and publish it atomically",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1])
		},
	}
}

func runConvert(catalogPath, indexDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	cfg.IndexDir = indexDir

	if info, err := os.Stat(catalogPath); err == nil && info.IsDir() {
		latest, err := latestSnapshot(catalogPath)
		if err != nil {
			return fmt.Errorf("convert: %w", err)
		}
		catalogPath = latest
	}

	catalogBytes, err := os.ReadFile(catalogPath)
	if err != nil {
		return fmt.Errorf("convert: read %q: %w", catalogPath, err)
	}
	digest := sha256.Sum256(catalogBytes)

	lock, err := buildguard.Acquire(indexDir)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	defer lock.Release()

	liveDir := liveDirFor(indexDir)

	staging, err := buildguard.StagingDir(indexDir)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	logDB, err := buildlog.Connect(cfg.BuildLogPath, cfg.Debug)
	if err != nil {
		buildguard.Discard(staging)
		return fmt.Errorf("convert: %w", err)
	}

	metaJSON, err := json.Marshal(map[string]string{"source": catalogPath, "index_dir": indexDir})
	if err != nil {
		buildguard.Discard(staging)
		return fmt.Errorf("convert: %w", err)
	}

	run, err := buildlog.Start(logDB, hex.EncodeToString(digest[:]), datatypes.JSON(metaJSON))
	if err != nil {
		buildguard.Discard(staging)
		return fmt.Errorf("convert: %w", err)
	}

	count, buildErr := buildIndex(catalogBytes, staging, cfg)
	if err := buildlog.Finish(logDB, run, count, buildErr); err != nil {
		fmt.Fprintln(os.Stderr, "convert: warning: failed to finalize build ledger row:", err)
	}
	if buildErr != nil {
		buildguard.Discard(staging)
		return fmt.Errorf("convert: %w", buildErr)
	}

	if err := buildguard.Publish(staging, liveDir); err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	fmt.Printf("published %d patterns to %s\n", count, indexDir)
	return nil
}

func buildIndex(catalogBytes []byte, stagingDir string, cfg *config.Config) (int, error) {
	records, err := ingest.Catalog(bytes.NewReader(catalogBytes))
	if err != nil {
		return 0, fmt.Errorf("ingest catalog: %w", err)
	}

	root := trie.NewRoot()
	for _, p := range records {
		full := trie.NewFull(p.Pattern(), p)
		if err := trie.Insert(root, full); err != nil {
			return 0, fmt.Errorf("insert %q: %w", p.Pattern(), err)
		}
	}
	trie.Optimize(root)

	store, err := openStagingStore(stagingDir, cfg)
	if err != nil {
		return 0, err
	}
	defer store.Close()

	if err := index.Write(store, root); err != nil {
		return 0, fmt.Errorf("write index: %w", err)
	}
	return len(records), nil
}

func openStagingStore(stagingDir string, cfg *config.Config) (kv.BatchStore, error) {
	if cfg.UsesRemoteKV() {
		s, err := libsqlkv.Open(cfg.LibsqlURL, cfg.LibsqlAuthToken)
		if err != nil {
			return nil, fmt.Errorf("open libsql store: %w", err)
		}
		return batchOrDirect{s}, nil
	}
	s, err := sqlitekv.Open(stagingDir + "/data.kv")
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return s, nil
}

// batchOrDirect adapts a kv.Store without its own Batch to kv.BatchStore by
// running fn directly. libsqlkv does not expose transactions today, so its
// Batch is semantically "apply one at a time".
type batchOrDirect struct {
	kv.Store
}

func (b batchOrDirect) Batch(fn func(kv.Store) error) error {
	return fn(b.Store)
}
