package plan

import (
	"sort"
	"time"

	"quarry/internal/quarter"
)

// Decision classifies what happens to one scanned file.
type Decision int

const (
	// Stay means the file is within the retention window and is left
	// where it is.
	Stay Decision = iota
	// Move means the file is stale and will be filed under its
	// quarter folder.
	Move
	// SkipProtected means the file matched the protection filter and
	// is never a move candidate, regardless of age.
	SkipProtected
)

func (d Decision) String() string {
	switch d {
	case Move:
		return "move"
	case SkipProtected:
		return "protected"
	default:
		return "stay"
	}
}

// Entry is one file considered for filing. Fields are captured once at
// scan time and never re-read, so every decision in a plan reflects the
// same snapshot of the directory.
type Entry struct {
	Path       string
	Name       string
	Size       int64
	ModifiedAt time.Time
}

// Item pairs an entry with its plan-time decision. Label is set only
// when the decision is Move.
type Item struct {
	Entry    Entry
	Decision Decision
	Label    quarter.Label
}

// Plan is the frozen, user-reviewable set of per-file decisions for a
// single directory snapshot. Items appear in enumeration order so log
// output stays deterministic across identical runs.
type Plan struct {
	Dir   string
	Built time.Time
	Items []Item
}

// Moves returns the items the mover will attempt, in plan order.
func (p *Plan) Moves() []Item {
	var moves []Item
	for _, item := range p.Items {
		if item.Decision == Move {
			moves = append(moves, item)
		}
	}
	return moves
}

// Labels returns the sorted set of destination quarter labels the plan
// requires.
func (p *Plan) Labels() []quarter.Label {
	seen := make(map[quarter.Label]struct{})
	var labels []quarter.Label
	for _, item := range p.Items {
		if item.Decision != Move {
			continue
		}
		if _, ok := seen[item.Label]; ok {
			continue
		}
		seen[item.Label] = struct{}{}
		labels = append(labels, item.Label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if labels[i].Year != labels[j].Year {
			return labels[i].Year < labels[j].Year
		}
		return labels[i].Quarter < labels[j].Quarter
	})
	return labels
}

// Summary aggregates a plan for the confirmation prompt.
type Summary struct {
	Total     int
	Stay      int
	Move      int
	Protected int
	Labels    []quarter.Label
}

func (p *Plan) Summary() Summary {
	s := Summary{Total: len(p.Items), Labels: p.Labels()}
	for _, item := range p.Items {
		switch item.Decision {
		case Move:
			s.Move++
		case SkipProtected:
			s.Protected++
		default:
			s.Stay++
		}
	}
	return s
}
