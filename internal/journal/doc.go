// Package journal keeps the append-only, human-readable record of a
// run: one line per attempted operation with its result, plus
// informational notes. A dedicated goroutine drains a buffered channel
// so recording never blocks the mover; journal durability is
// best-effort and a write failure never aborts the run.
package journal
