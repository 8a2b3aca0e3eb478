package quarter

import (
	"fmt"
	"time"
)

// Label identifies a calendar quarter. Its textual form is the fixed
// literal Q{1-4}-{year} used for destination folder names; repeated
// runs rely on the format matching exactly so files keep filing into
// folders created by earlier runs.
type Label struct {
	Quarter int
	Year    int
}

func (l Label) String() string {
	return fmt.Sprintf("Q%d-%d", l.Quarter, l.Year)
}

// IsZero reports whether the label carries no quarter.
func (l Label) IsZero() bool {
	return l.Quarter == 0 && l.Year == 0
}

// FromTime returns the quarter label for the given timestamp.
func FromTime(t time.Time) Label {
	return Label{
		Quarter: (int(t.Month())-1)/3 + 1,
		Year:    t.Year(),
	}
}

// Age is the outcome of classifying a modification time against the
// retention threshold.
type Age int

const (
	Fresh Age = iota
	Stale
)

func (a Age) String() string {
	if a == Stale {
		return "stale"
	}
	return "fresh"
}

// Classify reports whether a file last modified at modifiedAt is stale
// relative to now. The boundary is inclusive: a file exactly threshold
// old counts as stale. The returned label is derived from modifiedAt,
// not now, so a file is filed under the quarter it was last touched
// in; for fresh files the label is zero.
func Classify(modifiedAt, now time.Time, threshold time.Duration) (Age, Label) {
	if now.Sub(modifiedAt) >= threshold {
		return Stale, FromTime(modifiedAt)
	}
	return Fresh, Label{}
}

// Days converts a whole-day count into the duration Classify expects.
func Days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
