package journal

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"quarry/internal/logging"
	"quarry/internal/mover"
)

const lineBuffer = 256

// Journal appends run records to a text file inside the target
// directory. The file itself is registered with the protection filter
// so it is never classified for movement.
type Journal struct {
	path   string
	logger *slog.Logger

	lines chan string
	done  chan struct{}

	closeOnce sync.Once
	dropped   atomic.Int64
	writeErr  atomic.Bool
}

// Open creates or appends to the journal at path and starts the drain
// goroutine. Callers must Close to flush buffered lines.
func Open(path string, logger *slog.Logger) (*Journal, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}

	j := &Journal{
		path:   path,
		logger: logging.NewComponentLogger(logger, "journal"),
		lines:  make(chan string, lineBuffer),
		done:   make(chan struct{}),
	}
	go j.drain(file)
	return j, nil
}

// Path returns the journal file location for the final summary.
func (j *Journal) Path() string {
	return j.path
}

// Record appends one outcome line. Safe for concurrent use by mover
// workers; never blocks.
func (j *Journal) Record(o mover.Outcome) {
	switch o.Result {
	case mover.Moved:
		j.Note("moved %s -> %s", o.Item.Entry.Path, o.Dest)
	case mover.SkippedExists:
		j.Note("skipped %s: destination already exists: %s", o.Item.Entry.Path, o.Dest)
	case mover.Failed:
		j.Note("failed %s: %v", o.Item.Entry.Path, o.Err)
	default:
		j.Note("%s %s", o.Result, o.Item.Entry.Path)
	}
}

// Note appends an informational line.
func (j *Journal) Note(format string, args ...any) {
	line := fmt.Sprintf("%s %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
	select {
	case j.lines <- line:
	default:
		// Full buffer: drop rather than stall a move worker.
		j.dropped.Add(1)
	}
}

// Close flushes buffered lines and closes the file. Dropped or failed
// writes are reported through the logger; they never fail the run.
func (j *Journal) Close() error {
	j.closeOnce.Do(func() {
		close(j.lines)
		<-j.done
	})
	if n := j.dropped.Load(); n > 0 {
		j.logger.Warn("journal lines dropped", logging.Int64("count", n))
	}
	return nil
}

func (j *Journal) drain(file *os.File) {
	defer close(j.done)
	defer file.Close()

	for line := range j.lines {
		if _, err := file.WriteString(line); err != nil {
			if !j.writeErr.Swap(true) {
				j.logger.Warn("journal write failed",
					logging.String("path", j.path),
					logging.Error(err),
				)
			}
		}
	}
}
