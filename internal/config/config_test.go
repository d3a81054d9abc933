package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc")
	content := []byte("# pager settings\nbuffer=3\nthreshold=40\npage_size=100\nheight=1\nlabel=server log\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Buffer != 3 || s.Threshold != 40 || s.PageSize != 100 || s.FixedHeight != 1 {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if s.Label != "server log" {
		t.Fatalf("label = %q", s.Label)
	}
	if s.DebounceMs != DefaultDebounceMs {
		t.Fatalf("unset key changed: debounce %d", s.DebounceMs)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc")
	if err := os.WriteFile(path, []byte("buffer=3\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("VLIST_BUFFER", "8")
	t.Setenv("VLIST_LABEL", "records")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Buffer != 8 || s.Label != "records" {
		t.Fatalf("env override not applied: %+v", s)
	}
}

func TestLoadClampsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc")
	content := []byte("buffer=-2\nthreshold=-1\ndebounce_ms=0\npage_size=garbage\nheight=-5\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Buffer != DefaultBuffer || s.Threshold != DefaultThreshold {
		t.Fatalf("negative values not clamped: %+v", s)
	}
	if s.DebounceMs != DefaultDebounceMs || s.PageSize != DefaultPageSize {
		t.Fatalf("zero/garbage values not clamped: %+v", s)
	}
	if s.FixedHeight != 0 {
		t.Fatalf("negative height not clamped: %+v", s)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc")
	want := Settings{Buffer: 2, Threshold: 30, DebounceMs: 200, PageSize: 50, FixedHeight: 1, Label: "notes"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip: got %+v, want %+v", got, want)
	}
}

func TestDefaultPathUsesHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	want := filepath.Join(dir, ".vlistrc")
	if got := DefaultPath(); got != want {
		t.Fatalf("DefaultPath() = %q, want %q", got, want)
	}
}
