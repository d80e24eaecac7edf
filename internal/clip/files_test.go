package clip

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	cderror "github.com/msto63/clipdash/foundation/core/error"
)

func TestBufferFileName(t *testing.T) {
	tests := []struct {
		n    int
		text string
		want string
	}{
		{1, "hello world, this is a test", "buffer_001_hello world this is.txt"},
		{12, "", "buffer_012.txt"},
		{3, "  . _ * ()  ", "buffer_003.txt"},
		{100, "clip1", "buffer_100_clip1.txt"},
	}

	for _, tt := range tests {
		if got := BufferFileName(tt.n, tt.text, 4); got != tt.want {
			t.Errorf("BufferFileName(%d, %q) = %q; want %q", tt.n, tt.text, got, tt.want)
		}
	}
}

func TestSaveBuffers(t *testing.T) {
	dir := t.TempDir()
	paths, err := SaveBuffers(dir, []string{"alpha beta", "gamma"}, 4)
	if err != nil {
		t.Fatalf("SaveBuffers() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "buffer_001_alpha beta.txt"),
		filepath.Join(dir, "buffer_002_gamma.txt"),
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %q; want %q", paths, want)
	}
	data, _ := os.ReadFile(want[1])
	if string(data) != "gamma" {
		t.Errorf("content = %q", data)
	}

	if _, err := SaveBuffers(dir, nil, 4); !cderror.HasCode(err, cderror.CodeNoSelection) {
		t.Errorf("SaveBuffers(nil) error = %v; want NO_SELECTION", err)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(filepath.Join(sub, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(path, content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(filepath.Join(dir, "one.txt"), "line a\r\nline b\r\n")
	write(filepath.Join(sub, "a.txt"), "from a")
	write(filepath.Join(sub, "b.bin"), "bin\x00ary")
	write(filepath.Join(sub, "nested", "deep.txt"), "not loaded")

	texts, skipped := LoadFiles([]string{filepath.Join(dir, "one.txt"), sub, filepath.Join(dir, "missing.txt")}, "\n")

	if want := []string{"line a\nline b", "from a"}; !reflect.DeepEqual(texts, want) {
		t.Errorf("texts = %q; want %q", texts, want)
	}
	if want := []string{filepath.Join(sub, "b.bin"), filepath.Join(dir, "missing.txt")}; !reflect.DeepEqual(skipped, want) {
		t.Errorf("skipped = %q; want %q", skipped, want)
	}
}

func TestLoadFileToClipboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("x\ny\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	port := NewMemoryClipboard("")
	n, err := LoadFileToClipboard(port, path, "\r\n")
	if err != nil {
		t.Fatalf("LoadFileToClipboard() error = %v", err)
	}
	if n != 2 || port.Read() != "x\r\ny" {
		t.Errorf("got %d lines, clipboard %q", n, port.Read())
	}

	if _, err := LoadFileToClipboard(port, filepath.Dir(path), "\n"); !cderror.HasCode(err, cderror.CodeFileReadFailed) {
		t.Errorf("directory error = %v; want FILE_READ_FAILED", err)
	}
}
