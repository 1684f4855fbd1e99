package sqlitekv

import (
	"path/filepath"
	"testing"

	"github.com/oxhq/browscap/internal/kv"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "data.kv"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTest(t)

	if err := s.Put([]byte("k1"), []byte("v1")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := s.Get([]byte("k1"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || string(got) != "v1" {
		t.Fatalf("Get = (%q, %v), want (v1, true)", got, ok)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := openTest(t)
	_, ok, err := s.Get([]byte("nope"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing key")
	}
}

func TestPutOverwrites(t *testing.T) {
	s := openTest(t)
	s.Put([]byte("k"), []byte("old"))
	if err := s.Put([]byte("k"), []byte("new")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, _, _ := s.Get([]byte("k"))
	if string(got) != "new" {
		t.Fatalf("Get = %q, want new", got)
	}
}

func TestBatchCommitsAllOnSuccess(t *testing.T) {
	s := openTest(t)

	err := s.Batch(func(tx kv.Store) error {
		if err := tx.Put([]byte("a"), []byte("1")); err != nil {
			return err
		}
		return tx.Put([]byte("b"), []byte("2"))
	})
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}

	for k, want := range map[string]string{"a": "1", "b": "2"} {
		got, ok, err := s.Get([]byte(k))
		if err != nil || !ok || string(got) != want {
			t.Fatalf("Get(%q) = (%q, %v, %v), want (%q, true, nil)", k, got, ok, err, want)
		}
	}
}

func TestBatchRollsBackOnError(t *testing.T) {
	s := openTest(t)

	wantErr := &batchFailure{}
	err := s.Batch(func(tx kv.Store) error {
		if err := tx.Put([]byte("a"), []byte("1")); err != nil {
			return err
		}
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("Batch err = %v, want %v", err, wantErr)
	}

	_, ok, err := s.Get([]byte("a"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected rolled-back write to be absent")
	}
}

type batchFailure struct{}

func (*batchFailure) Error() string { return "batch failure" }

var _ kv.Store = (*Store)(nil)
var _ kv.BatchStore = (*Store)(nil)
