package mover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"quarry/internal/quarter"
)

// ErrDirectoryCreate marks a required quarter folder that could not be
// created. Materialization is all-or-nothing: one failure aborts the
// run before any move starts, rather than leaving it half-planned.
var ErrDirectoryCreate = errors.New("directory create error")

// EnsureDirectories creates every destination quarter folder the plan
// needs. Existing folders are a no-op; a regular file occupying a
// quarter name is an error. The call must fully complete before the
// mover starts.
func EnsureDirectories(dir string, labels []quarter.Label) error {
	for _, label := range labels {
		path := filepath.Join(dir, label.String())
		info, err := os.Stat(path)
		if err == nil {
			if info.IsDir() {
				continue
			}
			return fmt.Errorf("%w: %s: name is taken by a file", ErrDirectoryCreate, label)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s: %w", ErrDirectoryCreate, label, err)
		}
		if err := os.Mkdir(path, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDirectoryCreate, label, err)
		}
	}
	return nil
}
