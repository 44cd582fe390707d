package dfs

import "errors"

// VertexState represents the DFS visitation state of a state.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the current DFS path.
	Black        // Black: fully explored.
)

var (
	// ErrAutomatonNil is returned when a nil automaton is passed.
	ErrAutomatonNil = errors.New("dfs: automaton is nil")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalOrder.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)
