package buildlog

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	glebarez "github.com/glebarez/sqlite"
)

// Connect opens the build ledger database at dsn (a file path) and runs
// migrations. The ledger is always a local file: unlike the KV store it
// backs, it never needs to be a remote libsql database, so it always uses
// the cgo-free driver.
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("buildlog: create directory for %q: %w", dsn, err)
		}
	}

	config := &gorm.Config{}
	if debug {
		config.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(glebarez.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("buildlog: open %q: %w", dsn, err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("buildlog: migrate: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the build_runs table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&BuildRun{})
}
