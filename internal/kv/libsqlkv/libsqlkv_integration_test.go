//go:build integration
// +build integration

package libsqlkv

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestOpenIntegration exercises the libSQL connection path against a real
// remote database when credentials are available in the environment. Gated
// behind the "integration" build tag and skipped automatically otherwise.
func TestOpenIntegration(t *testing.T) {
	_ = godotenv.Load()

	url := os.Getenv("BROWSCAP_LIBSQL_URL")
	token := os.Getenv("BROWSCAP_LIBSQL_AUTH_TOKEN")
	if url == "" || token == "" {
		t.Skip("BROWSCAP_LIBSQL_URL or BROWSCAP_LIBSQL_AUTH_TOKEN not set; skipping")
	}

	s, err := Open(url, token)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Put([]byte("integration-test-key"), []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := s.Get([]byte("integration-test-key"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || string(got) != "v" {
		t.Fatalf("Get = (%q, %v), want (v, true)", got, ok)
	}
}
