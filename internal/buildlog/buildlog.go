package buildlog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Start inserts a "running" row for a new build and returns it. metadata is
// marshaled into the Metadata JSON column as-is; pass nil for none.
func Start(db *gorm.DB, catalogDigest string, metadata datatypes.JSON) (*BuildRun, error) {
	run := &BuildRun{
		ID:            uuid.NewString(),
		CatalogDigest: catalogDigest,
		Status:        "running",
		Metadata:      metadata,
	}
	if err := db.Create(run).Error; err != nil {
		return nil, fmt.Errorf("buildlog: start run: %w", err)
	}
	return run, nil
}

// Finish marks run as complete, recording the final pattern count and, if
// buildErr is non-nil, the failure message. It updates the row in place.
func Finish(db *gorm.DB, run *BuildRun, patternCount int, buildErr error) error {
	now := time.Now()
	run.FinishedAt = &now
	run.PatternCount = patternCount
	if buildErr != nil {
		run.Status = "failed"
		run.Error = buildErr.Error()
	} else {
		run.Status = "ok"
	}
	if err := db.Save(run).Error; err != nil {
		return fmt.Errorf("buildlog: finish run %s: %w", run.ID, err)
	}
	return nil
}
