// Package plan builds the frozen move plan for one run.
//
// The builder lists the target directory once, captures each file's
// metadata at that instant, and applies the protection filter and age
// policy to produce an ordered, immutable set of per-file decisions.
// The plan is what the user reviews before anything mutates; lock and
// destination-existence checks happen later, at move time, because
// both can change while the confirmation prompt sits open.
package plan
