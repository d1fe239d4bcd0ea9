package tokenstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "token"))

	if _, err := store.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before save, got %v", err)
	}

	if err := store.Save("tok-abc123"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	token, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if token != "tok-abc123" {
		t.Errorf("loaded %q, want %q", token, "tok-abc123")
	}

	if err := store.Delete(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFileDeleteIdempotent(t *testing.T) {
	store := NewFile(filepath.Join(t.TempDir(), "token"))

	// Deleting a token that was never saved must succeed
	if err := store.Delete(); err != nil {
		t.Fatalf("delete of absent token failed: %v", err)
	}
	if err := store.Delete(); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFile(path)

	if err := store.Save("secret"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file has permissions %o, want 600", perm)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	if _, err := store.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := store.Save("tok"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	token, err := store.Load()
	if err != nil || token != "tok" {
		t.Fatalf("load = %q, %v", token, err)
	}
	if err := store.Delete(); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
