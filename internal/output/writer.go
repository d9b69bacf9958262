// Package output writes generated files as a unit.
package output

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/aretw0/staged/internal/render"
)

// Writer writes rendered files below a root directory.
// A run either writes every file or leaves no file it created behind.
type Writer struct {
	fs     *afero.Afero
	root   string
	logger *slog.Logger
	// OnWrite is called after each successful file write.
	OnWrite func(path string)
}

// NewWriter returns a writer rooted at root on fs.
func NewWriter(fs afero.Fs, root string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{fs: &afero.Afero{Fs: fs}, root: root, logger: logger}
}

// WriteAll writes files. On failure, files created by this call are removed and
// files that existed before are restored to their previous content.
func (w *Writer) WriteAll(files []render.File) (err error) {
	type undo struct {
		path     string
		previous []byte
		existed  bool
	}
	var done []undo
	defer func() {
		if err == nil {
			return
		}
		for i := len(done) - 1; i >= 0; i-- {
			u := done[i]
			var rerr error
			if u.existed {
				rerr = w.fs.WriteFile(u.path, u.previous, 0o644)
			} else {
				if rerr = w.fs.Remove(u.path); errors.Is(rerr, os.ErrNotExist) {
					rerr = nil
				}
			}
			if rerr != nil {
				w.logger.Error("rollback failed", "path", u.path, "error", rerr)
				err = errors.Join(err, rerr)
			}
		}
	}()

	for _, f := range files {
		target := filepath.Join(w.root, f.Path)
		if err := w.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
		}
		previous, readErr := w.fs.ReadFile(target)
		existed := readErr == nil
		if readErr != nil && !errors.Is(readErr, os.ErrNotExist) {
			return fmt.Errorf("failed to read %s: %w", f.Path, readErr)
		}
		done = append(done, undo{path: target, previous: previous, existed: existed})
		if err := w.fs.WriteFile(target, f.Content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
		w.logger.Debug("file written", "path", target, "bytes", len(f.Content))
		if w.OnWrite != nil {
			w.OnWrite(target)
		}
	}
	return nil
}
