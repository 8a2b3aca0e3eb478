package mover

import "quarry/internal/plan"

// Result is the terminal state of one attempted move.
type Result int

const (
	// Moved means the file now exists at its destination and not at
	// the source.
	Moved Result = iota
	// SkippedLocked means another process held the file at move time;
	// it was left untouched.
	SkippedLocked
	// SkippedExists means a file already occupied the destination
	// path; the move was refused rather than overwriting.
	SkippedExists
	// Cancelled means the run was interrupted before this item was
	// dispatched; the file was left untouched.
	Cancelled
	// Failed means the move was attempted and the filesystem refused.
	Failed
)

func (r Result) String() string {
	switch r {
	case Moved:
		return "moved"
	case SkippedLocked:
		return "skipped-locked"
	case SkippedExists:
		return "skipped-exists"
	case Cancelled:
		return "cancelled"
	default:
		return "failed"
	}
}

// Outcome records what happened to a single planned move. Exactly one
// outcome is produced per plan item whose decision was Move.
type Outcome struct {
	Item   plan.Item
	Result Result
	Dest   string
	Err    error
}

// Tally aggregates outcomes for the final summary and exit status.
type Tally struct {
	Moved         int
	SkippedLocked int
	SkippedExists int
	Cancelled     int
	Failed        int
}

func Count(outcomes []Outcome) Tally {
	var t Tally
	for _, o := range outcomes {
		switch o.Result {
		case Moved:
			t.Moved++
		case SkippedLocked:
			t.SkippedLocked++
		case SkippedExists:
			t.SkippedExists++
		case Cancelled:
			t.Cancelled++
		case Failed:
			t.Failed++
		}
	}
	return t
}

// Clean reports whether the run completed without skips or failures.
func (t Tally) Clean() bool {
	return t.SkippedLocked == 0 && t.SkippedExists == 0 && t.Cancelled == 0 && t.Failed == 0
}
