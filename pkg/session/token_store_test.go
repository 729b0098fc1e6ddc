package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "token")

	ts, err := NewTokenStore(path)
	if err != nil {
		t.Fatalf("NewTokenStore failed: %v", err)
	}
	if ts.Token() != "" {
		t.Errorf("fresh store Token() = %q, want empty", ts.Token())
	}

	if err := ts.Save("jwt-abc"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if ts.Token() != "jwt-abc" {
		t.Errorf("Token() = %q", ts.Token())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("token file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file mode = %o, want 600", perm)
	}

	// a second store against the same path picks the token up
	reloaded, err := NewTokenStore(path)
	if err != nil {
		t.Fatalf("NewTokenStore reload failed: %v", err)
	}
	if reloaded.Token() != "jwt-abc" {
		t.Errorf("reloaded Token() = %q", reloaded.Token())
	}
}

func TestTokenStore_TrimsStoredWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("jwt-abc\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ts, err := NewTokenStore(path)
	if err != nil {
		t.Fatalf("NewTokenStore failed: %v", err)
	}
	if ts.Token() != "jwt-abc" {
		t.Errorf("Token() = %q, want trimmed", ts.Token())
	}
}

func TestTokenStore_ClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	ts, err := NewTokenStore(path)
	if err != nil {
		t.Fatalf("NewTokenStore failed: %v", err)
	}
	if err := ts.Save("jwt-abc"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := ts.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if ts.Token() != "" {
		t.Errorf("Token() = %q after Clear", ts.Token())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("token file still present after Clear")
	}

	// clearing again must not fail on the missing file
	if err := ts.Clear(); err != nil {
		t.Errorf("second Clear failed: %v", err)
	}
}
