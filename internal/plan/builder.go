package plan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"quarry/internal/logging"
	"quarry/internal/protect"
	"quarry/internal/quarter"
)

// ErrScan marks a directory that could not be enumerated. Scan
// failures are fatal: they abort the run before anything mutates.
var ErrScan = errors.New("scan error")

// Builder produces move plans. The threshold and protection filter are
// injected so tests can run with fixed clocks and synthetic deny-lists.
type Builder struct {
	filter    *protect.Filter
	threshold time.Duration
	logger    *slog.Logger
}

func NewBuilder(filter *protect.Filter, threshold time.Duration, logger *slog.Logger) *Builder {
	return &Builder{
		filter:    filter,
		threshold: threshold,
		logger:    logging.NewComponentLogger(logger, "planner"),
	}
}

// Build lists the immediate children of dir and classifies each
// regular file. Directories, including quarter folders left by earlier
// runs, are never re-classified. Metadata is read once per entry; the
// whole plan reflects one consistent instant.
func (b *Builder) Build(dir string, now time.Time) (*Plan, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", ErrScan, dir, err)
	}

	p := &Plan{Dir: dir, Built: now}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// Vanished between listing and stat; nothing to plan.
				continue
			}
			return nil, fmt.Errorf("%w: stat %s: %w", ErrScan, entry.Name(), err)
		}

		item := Item{Entry: Entry{
			Path:       filepath.Join(dir, entry.Name()),
			Name:       entry.Name(),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		}}

		switch {
		case b.filter.Protected(item.Entry.Path):
			item.Decision = SkipProtected
		default:
			age, label := quarter.Classify(item.Entry.ModifiedAt, now, b.threshold)
			if age == quarter.Stale {
				item.Decision = Move
				item.Label = label
			}
		}

		p.Items = append(p.Items, item)
	}

	summary := p.Summary()
	b.logger.Info("plan built",
		logging.String("dir", dir),
		logging.Int("files", summary.Total),
		logging.Int("moves", summary.Move),
		logging.Int("protected", summary.Protected),
	)
	return p, nil
}
