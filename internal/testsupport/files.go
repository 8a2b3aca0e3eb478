package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// WriteFileAged creates path with the given content and backdates its
// modification time so age-policy tests can build directories with a
// known history.
func WriteFileAged(t testing.TB, path, content string, modTime time.Time) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("chtimes %s: %v", path, err)
	}
}
