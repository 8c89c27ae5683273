package storage

import (
	"path/filepath"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	if got := s.Get("missing"); got != "" {
		t.Errorf("Get(missing): got %q, want empty", got)
	}

	s.Set("k", "v")
	if got := s.Get("k"); got != "v" {
		t.Errorf("Get(k): got %q, want v", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}

	s.Set("k", "v2")
	if got := s.Get("k"); got != "v2" {
		t.Errorf("Get(k) after overwrite: got %q, want v2", got)
	}

	s.Remove("k")
	if got := s.Get("k"); got != "" {
		t.Errorf("Get(k) after remove: got %q, want empty", got)
	}
	s.Remove("k") // removing twice is fine
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "session.json")

	s := NewFileStore(path)
	s.Set("auth_token", "tok")
	s.Set("user_role", "recruiter")
	s.Remove("user_role")

	reloaded := NewFileStore(path)
	if got := reloaded.Get("auth_token"); got != "tok" {
		t.Errorf("auth_token after reload: got %q, want tok", got)
	}
	if got := reloaded.Get("user_role"); got != "" {
		t.Errorf("removed key survived reload: %q", got)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	t.Parallel()
	s := NewFileStore(filepath.Join(t.TempDir(), "never-written.json"))
	if got := s.Get("k"); got != "" {
		t.Errorf("Get on empty store: got %q", got)
	}
}

func TestFileStoreUnwritablePathStillServesReads(t *testing.T) {
	t.Parallel()
	s := NewFileStore(filepath.Join(t.TempDir(), "no-such-dir", "session.json"))
	s.Set("k", "v")
	if got := s.Get("k"); got != "v" {
		t.Errorf("Get after failed flush: got %q, want v", got)
	}
}
