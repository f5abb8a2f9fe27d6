package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"

	"github.com/niklub/github-scraper/internal/logging"
)

func TestWriteToStdoutWhenNoPath(t *testing.T) {
	var buf bytes.Buffer
	w := Writer{Stdout: &buf, Log: logging.New(logr.Discard())}
	if err := w.Write("", "hello\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Fatalf("unexpected stdout %q", buf.String())
	}
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "summary.md")
	w := Writer{Stdout: os.Stdout, Log: logging.New(logr.Discard())}
	if err := w.Write(path, "# Summary\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "# Summary\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w := Writer{Stdout: os.Stdout, Log: logging.New(logr.Discard())}
	if err := w.Write(path, "first"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Write(path, "second"); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}
