package protect

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// Filter matches file names against the set of protected names. Name
// comparison uses Unicode case folding to mirror the caseless filename
// semantics of the filesystems the tool is typically pointed at.
//
// A Filter is not safe for concurrent use; the planner applies it from
// a single goroutine.
type Filter struct {
	fold       cases.Caser
	names      map[string]struct{}
	extensions map[string]struct{}
}

// New builds a filter guarding the running executable, the journal
// file, and the reserved deny-list. Deny-list entries starting with a
// dot match by extension (".log" protects every log file); all other
// entries match an exact file name.
func New(executable, journal string, reserved []string) *Filter {
	f := &Filter{
		fold:       cases.Fold(),
		names:      make(map[string]struct{}),
		extensions: make(map[string]struct{}),
	}
	for _, path := range []string{executable, journal} {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		if name := filepath.Base(trimmed); name != "." && name != string(filepath.Separator) {
			f.names[f.fold.String(name)] = struct{}{}
		}
	}
	for _, entry := range reserved {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.HasPrefix(entry, ".") && !strings.Contains(entry[1:], ".") {
			f.extensions[f.fold.String(entry)] = struct{}{}
			continue
		}
		f.names[f.fold.String(entry)] = struct{}{}
	}
	return f
}

// Protected reports whether the path may never be moved.
func (f *Filter) Protected(path string) bool {
	name := f.fold.String(filepath.Base(path))
	if _, ok := f.names[name]; ok {
		return true
	}
	if ext := filepath.Ext(name); ext != "" {
		if _, ok := f.extensions[ext]; ok {
			return true
		}
	}
	return false
}
