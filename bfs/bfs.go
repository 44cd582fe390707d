// Package bfs provides breadth-first search over an automaton's transition
// graph, returning word-length distances, parent links, tree-edge letters
// and visit order.
//
// BFS explores states in increasing distance from the start state,
// with optional hooks, depth limiting, and letter filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/automata/automaton"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	state int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	auto    *automaton.Automaton
	opts    BFSOptions
	ctx     context.Context
	letters []rune
	queue   []queueItem
	visited map[int]bool
	res     *BFSResult
}

// BFS runs breadth-first search on a starting from start,
// applying any number of functional Options.
// Returns ErrAutomatonNil or ErrStartStateNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(a *automaton.Automaton, start int, opts ...Option) (*BFSResult, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	w, err := newWalker(a, opts)
	if err != nil {
		return nil, err
	}
	if !a.HasState(start) {
		return nil, ErrStartStateNotFound
	}

	w.enqueue(start, 0)
	return w.res, w.loop(nil)
}

// ShortestAccepted returns a shortest word accepted by a, ties broken by
// letter order, and false if L(a) is empty (within MaxDepth, if set).
// The search starts from every initial state at depth 0.
func ShortestAccepted(a *automaton.Automaton, opts ...Option) (string, bool, error) {
	if a == nil {
		return "", false, ErrAutomatonNil
	}
	w, err := newWalker(a, opts)
	if err != nil {
		return "", false, err
	}

	for _, s := range a.Initial().Items() {
		w.enqueue(s, 0)
	}
	found, hit := 0, false
	if err = w.loop(func(s int) bool {
		if a.IsFinal(s) {
			found, hit = s, true
		}
		return hit
	}); err != nil {
		return "", false, err
	}
	if !hit {
		return "", false, nil
	}
	word, err := w.res.WordTo(found)

	return word, err == nil, err
}

// newWalker applies options and prepares an empty traversal over a.
func newWalker(a *automaton.Automaton, opts []Option) (*walker, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := a.StateCount()
	return &walker{
		auto:    a,
		opts:    o,
		ctx:     o.Ctx,
		letters: a.Alphabet().Items(),
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
			Via:    make(map[int]rune, n),
		},
	}, nil
}

// enqueue marks s visited at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(s, d int) {
	w.visited[s] = true
	w.res.Depth[s] = d
	w.opts.OnEnqueue(s, d)
	w.queue = append(w.queue, queueItem{state: s, depth: d})
}

// loop processes the queue until empty, error, cancellation, or until
// stop reports true for a visited state.
func (w *walker) loop(stop func(state int) bool) error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if stop != nil && stop(item.state) {
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.state, item.depth)
	return item
}

// visit records the state in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.state)
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.state, err)
	}
	return nil
}

// enqueueNeighbors walks letters ascending, then destinations ascending,
// applying filtering and MaxDepth, and enqueues each unseen destination.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, c := range w.letters {
		if !w.opts.FilterLetter(c) {
			continue
		}
		for _, q := range w.auto.Neighbors(item.state, c).Items() {
			// first time seen?
			if w.visited[q] {
				continue
			}
			w.res.Parent[q] = item.state
			w.res.Via[q] = c
			w.enqueue(q, nextDepth)
		}
	}
}
