// Package mover executes a frozen move plan.
//
// Destination quarter folders are materialized first, as a strict
// barrier, so workers never race folder creation against file
// placement. Each planned move is then handled by exactly one worker:
// re-probe the lock, check the destination, rename. Anything that
// would require destructive guessing is refused in favor of a skip
// outcome; nothing is retried within a run.
package mover
