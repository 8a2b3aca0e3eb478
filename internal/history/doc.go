// Package history persists executed runs in SQLite so `quarry
// history` can show what past invocations did. Recording is
// best-effort after execution completes; a history failure never
// affects move correctness.
//
// The database is a convenience archive, not operational state; users
// may delete it at any time.
package history
