package fsutil

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "file.core")
	if err := WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("unexpected content %q", got)
	}

	// No temporary artifacts may survive.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("leftover files in output dir: %v", entries)
	}
}

func TestFindByExt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mk := func(rel string) {
		t.Helper()
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	mk("a.core")
	mk("sub/deep/b.CORE")
	mk("sub/readme.txt")
	mk("c.stream")

	files, err := FindByExt(root, "core")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	want := []string{"a.core", filepath.Join("sub", "deep", "b.CORE")}
	slices.Sort(files)
	if !slices.Equal(files, want) {
		t.Fatalf("got %v, want %v", files, want)
	}
}
