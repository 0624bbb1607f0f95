package jdk

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover_SortsLexicographically(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	for _, name := range []string{"21", "8", "17"} {
		if err := os.Mkdir(filepath.Join(base, name), 0o755); err != nil {
			t.Fatalf("Mkdir: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(base, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	candidates, err := Discover(base)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	expected := []string{"17", "21", "8"}
	if len(candidates) != len(expected) {
		t.Fatalf("expected %d candidates, got %d", len(expected), len(candidates))
	}
	for i, name := range expected {
		if candidates[i].Name != name {
			t.Fatalf("expected %s at index %d, got %s", name, i, candidates[i].Name)
		}
		if candidates[i].Path != filepath.Join(base, name) {
			t.Fatalf("expected path %s, got %s", filepath.Join(base, name), candidates[i].Path)
		}
	}
}

func TestDiscover_MissingBaseDir(t *testing.T) {
	t.Parallel()

	_, err := Discover(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrBaseDirNotFound) {
		t.Fatalf("expected ErrBaseDirNotFound, got %v", err)
	}
}

func TestDiscover_EmptyBaseDir(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "stray-file"), []byte(""), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Discover(base)
	if !errors.Is(err, ErrNoInstallations) {
		t.Fatalf("expected ErrNoInstallations, got %v", err)
	}
}

func TestFindByName(t *testing.T) {
	t.Parallel()

	candidates := []Candidate{
		{Name: "17", Path: "/opt/java/17"},
		{Name: "21", Path: "/opt/java/21"},
	}

	found, ok := FindByName(candidates, "21")
	if !ok {
		t.Fatalf("expected to find candidate 21")
	}
	if found.Path != "/opt/java/21" {
		t.Fatalf("expected path /opt/java/21, got %s", found.Path)
	}

	if _, ok := FindByName(candidates, "11"); ok {
		t.Fatalf("did not expect to find candidate 11")
	}
}
