// Package bfs provides a breadth-first search over the transition graph of
// an automaton.Automaton, returning word-length distances, parent links,
// tree-edge letters, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (number of letters read)
//     from a start state.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  map from state → distance from the start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Via:    map from state → letter on the tree edge into it
//   - PathTo(dest) rebuilds the state path, WordTo(dest) the shortest word.
//   - ShortestAccepted(a) runs a multi-source search from every initial
//     state and stops at the first final state: a shortest accepted word,
//     or false when the language is empty.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a state is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - WithFilterLetter drops every transition on a letter.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Letters are expanded in ascending order and destinations in ascending
//	order, so the visit sequence is fully reproducible and, among the
//	shortest words reaching a state, WordTo returns the smallest one.
//
// Complexity (V = |states|, E = |transitions|, Σ = |alphabet|)
//
//   - Time:   O(V·Σ + E·log E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(a, 0, bfs.WithMaxDepth(4))
//	if err != nil {
//		// ErrAutomatonNil, ErrStartStateNotFound, ErrOptionViolation,
//		// context errors, or wrapped OnVisit errors
//	}
//	word, _ := res.WordTo(3)
//
//	w, ok, err := bfs.ShortestAccepted(a)
//
// Errors
//
//   - ErrAutomatonNil        if the automaton pointer is nil.
//   - ErrStartStateNotFound  if the start state does not exist.
//   - ErrOptionViolation     if invalid Option (e.g. negative MaxDepth).
//   - ErrNotReached          from PathTo/WordTo for unvisited states.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
