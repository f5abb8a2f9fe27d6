package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/niklub/github-scraper/internal/logging"
)

// Writer persists result text to a file, or displays it on Stdout when no
// destination path is given.
type Writer struct {
	Stdout io.Writer
	Log    logging.Logger
}

func New(log logging.Logger) Writer {
	return Writer{Stdout: os.Stdout, Log: log}
}

// Write saves text to path with overwrite semantics, creating parent
// directories as needed. An empty path writes to Stdout instead.
func (w Writer) Write(path, text string) error {
	if path == "" {
		if _, err := io.WriteString(w.Stdout, text); err != nil {
			return fmt.Errorf("write to stdout: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output file %s: %w", path, err)
	}
	w.Log.Info("wrote output", "path", path, "bytes", len(text))
	return nil
}
