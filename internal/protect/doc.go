// Package protect decides which paths must never be considered for
// movement: the running executable, the outcome journal, and a
// configured deny-list of reserved names. Protected files classify as
// Stay regardless of age and are never lock-probed.
package protect
