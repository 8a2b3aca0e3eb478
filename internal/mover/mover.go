package mover

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sys/unix"

	"quarry/internal/lockprobe"
	"quarry/internal/logging"
	"quarry/internal/plan"
)

// Recorder receives every outcome as it is produced. Implementations
// must never block move completion; the journal satisfies this with a
// buffered asynchronous writer.
type Recorder interface {
	Record(Outcome)
}

// Mover drains a plan's move items across a bounded worker pool. Pool
// size targets I/O parallelism; zero or negative means the logical CPU
// count.
type Mover struct {
	prober   lockprobe.Prober
	workers  int
	recorder Recorder
	logger   *slog.Logger
}

func New(prober lockprobe.Prober, workers int, recorder Recorder, logger *slog.Logger) *Mover {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Mover{
		prober:   prober,
		workers:  workers,
		recorder: recorder,
		logger:   logging.NewComponentLogger(logger, "mover"),
	}
}

// Execute attempts every planned move and returns exactly one outcome
// per move item. Outcome order follows completion, not plan order;
// each outcome carries its item so logging stays attributable. When
// ctx is cancelled mid-run, in-flight moves finish, nothing new is
// dispatched, and undispatched items yield Cancelled outcomes.
func (m *Mover) Execute(ctx context.Context, p *plan.Plan) []Outcome {
	moves := p.Moves()
	if len(moves) == 0 {
		return nil
	}

	items := make(chan plan.Item)
	results := make(chan Outcome, len(moves))

	var wg sync.WaitGroup
	for i := 0; i < m.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range items {
				results <- m.moveOne(p.Dir, item)
			}
		}()
	}

	dispatched := 0
	for dispatched < len(moves) {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
		case items <- moves[dispatched]:
			dispatched++
			continue
		}
		break
	}
	close(items)

	for _, item := range moves[dispatched:] {
		results <- m.finish(Outcome{Item: item, Result: Cancelled})
	}

	wg.Wait()
	close(results)

	outcomes := make([]Outcome, 0, len(moves))
	for outcome := range results {
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// moveOne re-checks lock state and destination occupancy at move time.
// Both can change while the confirmation prompt sits open, so the
// plan-time decision alone is never trusted.
func (m *Mover) moveOne(dir string, item plan.Item) Outcome {
	out := Outcome{Item: item}

	locked, err := m.prober.Locked(item.Entry.Path)
	if err != nil {
		out.Result = Failed
		out.Err = fmt.Errorf("probe lock: %w", err)
		return m.finish(out)
	}
	if locked {
		out.Result = SkippedLocked
		return m.finish(out)
	}

	out.Dest = filepath.Join(dir, item.Label.String(), item.Entry.Name)
	if _, err := os.Lstat(out.Dest); err == nil {
		out.Result = SkippedExists
		return m.finish(out)
	} else if !errors.Is(err, fs.ErrNotExist) {
		out.Result = Failed
		out.Err = fmt.Errorf("inspect destination: %w", err)
		return m.finish(out)
	}

	if err := os.Rename(item.Entry.Path, out.Dest); err != nil {
		out.Result = Failed
		out.Err = renameReason(err)
		return m.finish(out)
	}

	out.Result = Moved
	return m.finish(out)
}

func (m *Mover) finish(out Outcome) Outcome {
	if m.recorder != nil {
		m.recorder.Record(out)
	}
	switch out.Result {
	case Moved:
		m.logger.Info("moved file",
			logging.String("source", out.Item.Entry.Path),
			logging.String("dest", out.Dest),
		)
	case Failed:
		m.logger.Error("move failed",
			logging.String("source", out.Item.Entry.Path),
			logging.String("dest", out.Dest),
			logging.Error(out.Err),
		)
	default:
		m.logger.Info("move skipped",
			logging.String("source", out.Item.Entry.Path),
			logging.String("reason", out.Result.String()),
		)
	}
	return out
}

// renameReason translates the common rename failures into something a
// user can act on. Cross-device moves are surfaced, not retried: the
// engine only promises the atomicity of a same-volume rename.
func renameReason(err error) error {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, unix.EXDEV) {
		return fmt.Errorf("destination is on a different volume: %w", err)
	}
	return err
}
