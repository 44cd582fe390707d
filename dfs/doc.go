// Package dfs implements depth-first analyses of an automaton's transition
// graph: cycle detection, topological ordering and language finiteness.
//
// What
//
//   - FindCycle reports one cycle (a closed state sequence) if any exists
//     among a chosen set of states.
//   - TopologicalOrder returns states so that every transition goes from an
//     earlier to a later state, or ErrCycleDetected.
//   - IsFinite reports whether L(a) is finite: the language is infinite iff
//     some cycle passes through a useful state, i.e. one that is both
//     accessible from an initial state and co-accessible to a final one.
//
// Three-color marking (White, Gray, Black) is driven by an explicit stack,
// so arbitrarily long chains do not grow the goroutine stack. Letters and
// destinations are expanded in ascending order; results are deterministic.
//
// Complexity (V = |states|, E = |transitions|, Σ = |alphabet|)
//
//   - Time:   O(V·Σ + E·log E)
//   - Memory: O(V)
package dfs
