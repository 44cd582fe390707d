// Package set provides a small generic ordered set used throughout the
// automaton packages for state and letter collections.
//
// What
//
//   - Set[T] stores distinct elements of any ordered type (ints, runes, strings).
//   - Add is idempotent; Has is O(1).
//   - Items and Each enumerate in ascending order, so every printout and
//     every traversal built on a Set is reproducible.
//   - Union, Intersect and Difference never modify their operands; each
//     returns a new set owned by the caller.
//
// Why
//
//	Automaton operations combine state sets constantly (one-letter images,
//	fixpoints, final-state tests). A value-owning set with explicit copy
//	semantics keeps every automaton's storage independent of every other.
//
// Complexity (n = |set|)
//
//   - Add, Has, Len:           O(1)
//   - Items, Each, String:      O(n log n)
//   - Union, Intersect, Diff:   O(n + m)
//
// The zero value is not ready for use; create sets with New.
package set
