package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "highscore.txt"))
	s.Save(42)
	if got := s.Load(); got != 42 {
		t.Fatalf("Load() = %d, want 42", got)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "42" {
		t.Errorf("file contents = %q, want %q", data, "42")
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "data", "nested", "highscore.txt"))
	s.Save(7)
	if got := s.Load(); got != 7 {
		t.Fatalf("Load() = %d, want 7", got)
	}
}

func TestFileStoreBadData(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"corrupt":  "not a number",
		"empty":    "",
		"negative": "-3",
	}
	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".txt")
			if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
				t.Fatal(err)
			}
			if got := NewFileStore(path).Load(); got != 0 {
				t.Errorf("Load() = %d, want 0", got)
			}
		})
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte(" 19\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := NewFileStore(path).Load(); got != 19 {
		t.Errorf("Load() = %d, want 19", got)
	}
}

func TestFileStoreMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.txt"))
	if got := s.Load(); got != 0 {
		t.Errorf("Load() = %d, want 0", got)
	}
}

func TestFileStoreUnwritable(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes the write fail.
	path := filepath.Join(dir, "highscore.txt")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(path)
	s.Save(10)
	if got := s.Load(); got != 0 {
		t.Errorf("Load() = %d, want 0", got)
	}
}
