// Package quarter derives calendar-quarter labels from file
// modification times and classifies files as fresh or stale against a
// retention threshold.
//
// Everything here is pure: labels and age decisions depend only on the
// timestamps passed in, never on the wall clock or the filesystem, so
// the planner can be tested with fixed times.
package quarter
