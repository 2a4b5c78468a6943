package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesThenReuses(t *testing.T) {
	dir := t.TempDir()

	first, err := Load(dir)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	if first == "" {
		t.Fatal("expected a non-empty session id")
	}

	second, err := Load(dir)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if second != first {
		t.Errorf("session id changed between loads: %q != %q", second, first)
	}
}

func TestLoadIgnoresBlankFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "session"), []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}

	id, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if id == "" {
		t.Error("blank session file should be replaced with a fresh id")
	}
}
