package services

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openUploadSource(t *testing.T, content string) *os.File {
	t.Helper()
	src := filepath.Join(t.TempDir(), "src")
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write source file: %v", err)
	}
	f, err := os.Open(src)
	if err != nil {
		t.Fatalf("failed to open source file: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestSaveUploadRejectsUnknownExtension(t *testing.T) {
	baseDir := t.TempDir()
	f := openUploadSource(t, "not an image")

	_, err := SaveUpload(baseDir, "posters", f, &multipart.FileHeader{Filename: "notes.txt"})
	if err == nil {
		t.Fatal("expected error for .txt upload")
	}

	// A rejected upload must leave no trace on disk.
	if _, err := os.Stat(filepath.Join(baseDir, "posters")); !os.IsNotExist(err) {
		t.Errorf("rejected upload created the posters dir: %v", err)
	}
}

func TestSaveUploadStoresImage(t *testing.T) {
	baseDir := t.TempDir()
	f := openUploadSource(t, "fake png bytes")

	path, err := SaveUpload(baseDir, "posters", f, &multipart.FileHeader{Filename: "Poster.PNG"})
	if err != nil {
		t.Fatalf("SaveUpload failed: %v", err)
	}
	if !strings.HasPrefix(path, "posters/") || !strings.HasSuffix(path, ".png") {
		t.Errorf("stored path = %q, want posters/<name>.png", path)
	}

	data, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(path)))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "fake png bytes" {
		t.Errorf("stored content = %q", data)
	}
}
