// Package buildlog records one ledger row per index build, so a convert
// run's outcome can be audited after the fact without re-reading logs.
package buildlog

import (
	"time"

	"gorm.io/datatypes"
)

// BuildRun is one row in the build ledger: a single invocation of the
// ingest -> insert -> optimize -> write pipeline.
type BuildRun struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	StartedAt time.Time `gorm:"autoCreateTime"`
	FinishedAt *time.Time

	CatalogDigest string `gorm:"type:varchar(64);index"`
	PatternCount  int
	Status        string `gorm:"type:varchar(20);default:'running'"` // running, ok, failed
	Error         string `gorm:"type:text"`

	// Metadata carries free-form, non-queried detail about the run; convert
	// records the source path and index dir. Typed columns above for what gets
	// queried, JSON here for what doesn't.
	Metadata datatypes.JSON `gorm:"type:jsonb"`
}

// TableName keeps the ledger table name stable regardless of Go type name.
func (BuildRun) TableName() string { return "build_runs" }
