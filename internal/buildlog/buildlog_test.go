package buildlog

import (
	"errors"
	"testing"
)

func TestStartAndFinishOK(t *testing.T) {
	db, err := Connect(":memory:", false)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	run, err := Start(db, "deadbeef", nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if run.Status != "running" {
		t.Fatalf("status = %q, want running", run.Status)
	}

	if err := Finish(db, run, 42, nil); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if run.Status != "ok" {
		t.Fatalf("status = %q, want ok", run.Status)
	}
	if run.PatternCount != 42 {
		t.Fatalf("PatternCount = %d, want 42", run.PatternCount)
	}
	if run.FinishedAt == nil {
		t.Fatal("FinishedAt not set")
	}

	var reloaded BuildRun
	if err := db.First(&reloaded, "id = ?", run.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != "ok" || reloaded.PatternCount != 42 {
		t.Fatalf("reloaded row mismatch: %+v", reloaded)
	}
}

func TestFinishWithError(t *testing.T) {
	db, err := Connect(":memory:", false)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	run, err := Start(db, "cafef00d", nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	buildErr := errors.New("ingest: bad header row")
	if err := Finish(db, run, 0, buildErr); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if run.Status != "failed" {
		t.Fatalf("status = %q, want failed", run.Status)
	}
	if run.Error != buildErr.Error() {
		t.Fatalf("Error = %q, want %q", run.Error, buildErr.Error())
	}
}
