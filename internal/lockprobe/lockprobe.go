package lockprobe

import (
	"errors"
	"io/fs"

	"github.com/gofrs/flock"
)

// Prober reports whether a file is currently in use by another
// process. Implementations must leave the file untouched.
type Prober interface {
	Locked(path string) (bool, error)
}

// Flock probes with a non-blocking exclusive flock. A file the tool is
// not permitted to open reports as locked rather than as an error: it
// cannot be moved safely either way, only skipped.
type Flock struct{}

func (Flock) Locked(path string) (bool, error) {
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return true, nil
		}
		return false, err
	}
	if !ok {
		return true, nil
	}
	return false, lock.Unlock()
}
