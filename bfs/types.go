// Package bfs provides tunable options and error definitions
// for breadth-first search over an automaton.Automaton.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartStateNotFound is returned when the start state is absent.
	ErrStartStateNotFound = errors.New("bfs: start state not found")

	// ErrAutomatonNil is returned if a nil automaton pointer is passed.
	ErrAutomatonNil = errors.New("bfs: automaton is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo and WordTo for unvisited states.
	ErrNotReached = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, before visiting.
	// Receives the state and its depth (word length) from the start.
	OnEnqueue func(state, depth int)

	// OnDequeue is called immediately before visiting a state.
	OnDequeue func(state, depth int)

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(state, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterLetter can skip every transition labelled with a letter
	// by returning false.
	FilterLetter func(letter rune) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all letters allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:          context.Background(),
		OnEnqueue:    func(int, int) {},
		OnDequeue:    func(int, int) {},
		OnVisit:      func(int, int) error { return nil },
		MaxDepth:     0,
		FilterLetter: func(rune) bool { return true },
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(state, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(state, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(state, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterLetter skips transitions whose letter makes fn return false.
func WithFilterLetter(fn func(letter rune) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterLetter = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: map from state to its distance (in letters) from the sources.
//   - Parent: map from state to its predecessor in the BFS tree.
//   - Via: map from state to the letter on its tree edge.
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
	Via    map[int]rune
}

// PathTo reconstructs the state path from a source to dest.
// Returns ErrNotReached if dest was not visited.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// WordTo returns the shortest word leading from a source to dest, spelled
// by the tree edges of the traversal.
func (r *BFSResult) WordTo(dest int) (string, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return "", err
	}
	word := make([]rune, 0, len(path)-1)
	for _, s := range path[1:] {
		word = append(word, r.Via[s])
	}

	return string(word), nil
}
