package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envIndexDir, "")
	t.Setenv(envLibsqlURL, "")
	t.Setenv(envWALCheckpointMB, "")
	t.Setenv(envDebug, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IndexDir != defaultIndexDir {
		t.Fatalf("IndexDir = %q, want %q", cfg.IndexDir, defaultIndexDir)
	}
	if cfg.WALCheckpointMB != defaultWALCheckpointMB {
		t.Fatalf("WALCheckpointMB = %d, want %d", cfg.WALCheckpointMB, defaultWALCheckpointMB)
	}
	if cfg.UsesRemoteKV() {
		t.Fatal("expected UsesRemoteKV() false with no libsql URL set")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envIndexDir, "/tmp/idx")
	t.Setenv(envLibsqlURL, "libsql://example.turso.io")
	t.Setenv(envLibsqlAuthToken, "secret")
	t.Setenv(envWALCheckpointMB, "128")
	t.Setenv(envDebug, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IndexDir != "/tmp/idx" {
		t.Fatalf("IndexDir = %q", cfg.IndexDir)
	}
	if !cfg.UsesRemoteKV() {
		t.Fatal("expected UsesRemoteKV() true")
	}
	if cfg.WALCheckpointMB != 128 {
		t.Fatalf("WALCheckpointMB = %d", cfg.WALCheckpointMB)
	}
	if !cfg.Debug {
		t.Fatal("expected Debug true")
	}
}

func TestLoadRejectsBadInt(t *testing.T) {
	t.Setenv(envWALCheckpointMB, "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric WAL checkpoint size")
	}
}
