// Package lockprobe detects whether another process currently holds a
// file open before the mover touches it. The probe is non-destructive:
// it takes and immediately releases an exclusive advisory lock and
// never modifies file contents.
package lockprobe
