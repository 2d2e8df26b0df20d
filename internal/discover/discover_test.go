package discover

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "widget.hpp", "")
	write(t, dir, "widget.cpp", "")
	write(t, dir, "README.md", "")
	write(t, dir, "notes.txt", "")

	files, err := Files(dir)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 C/C++ files, got %d: %+v", len(files), files)
	}
}

func TestFilesSkipsDotDirs(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, filepath.Join(".git", "ignored.cpp"), "")
	write(t, dir, "kept.cpp", "")

	files, err := Files(dir)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 1 || files[0].Path != "kept.cpp" {
		t.Fatalf("expected only kept.cpp, got %+v", files)
	}
}

func TestFilesHonorsGitignore(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, ".gitignore", "generated/\n")
	write(t, dir, filepath.Join("generated", "skip.cpp"), "")
	write(t, dir, "keep.cpp", "")

	files, err := Files(dir)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 1 || files[0].Path != "keep.cpp" {
		t.Fatalf("expected only keep.cpp, got %+v", files)
	}
}

func write(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}
