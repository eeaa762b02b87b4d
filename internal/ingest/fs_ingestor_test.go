package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.pdf"))
	writeFile(t, filepath.Join(dir, "b.pdf"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, ".hidden.pdf"))
	writeFile(t, filepath.Join(dir, "sub", "c.pdf"))
	writeFile(t, filepath.Join(dir, ".cache", "d.pdf"))

	ing := NewFSIngestor(slog.New(slog.NewTextHandler(io.Discard, nil)))
	paths, stats, err := ing.CollectDirectory(context.Background(), dir, true)
	if err != nil {
		t.Fatalf("CollectDirectory: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "sub", "c.pdf"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
	if stats.Matched != 3 {
		t.Errorf("Matched = %d, want 3", stats.Matched)
	}
}

func TestCollectDirectoryEmptyRoot(t *testing.T) {
	ing := NewFSIngestor(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if _, _, err := ing.CollectDirectory(context.Background(), "   ", true); err == nil {
		t.Fatal("expected error for blank root")
	}
}

func TestAllowedExt(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".pdf", true},
		{".PDF", true},
		{"pdf", true},
		{".txt", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := AllowedExt(tc.ext); got != tc.want {
			t.Errorf("AllowedExt(%q) = %v, want %v", tc.ext, got, tc.want)
		}
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden("/tmp/.cache") {
		t.Error("dotted base should be hidden")
	}
	if IsHidden("/tmp/.cache/visible.pdf") {
		t.Error("visible file under hidden dir is judged by its own base")
	}
}
