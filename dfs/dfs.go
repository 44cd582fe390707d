package dfs

import (
	"fmt"

	"github.com/katalvlaran/automata/automaton"
	"github.com/katalvlaran/automata/set"
)

// frame is one entry of the explicit DFS stack: a state and the successors
// still to explore from it.
type frame struct {
	state int
	next  []int
}

// walker holds the coloring shared by every DFS tree of one analysis.
type walker struct {
	auto    *automaton.Automaton
	letters []rune
	within  *set.Set[int]
	color   map[int]int
	post    []int // states in finishing order
}

func newWalker(a *automaton.Automaton, within *set.Set[int]) *walker {
	return &walker{
		auto:    a,
		letters: a.Alphabet().Items(),
		within:  within,
		color:   make(map[int]int, within.Len()),
	}
}

// successors lists the distinct destinations of s inside w.within,
// letters ascending then destinations ascending.
func (w *walker) successors(s int) []int {
	seen := set.New[int]()
	var out []int
	for _, c := range w.letters {
		for _, q := range w.auto.Neighbors(s, c).Items() {
			if !w.within.Has(q) || seen.Has(q) {
				continue
			}
			seen.Add(q)
			out = append(out, q)
		}
	}

	return out
}

// visit explores from root. It returns the closed cycle [v, …, v] found at
// the first back edge, or nil when the tree is acyclic.
func (w *walker) visit(root int) []int {
	w.color[root] = Gray
	stack := []frame{{state: root, next: w.successors(root)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.next) == 0 {
			w.color[top.state] = Black
			w.post = append(w.post, top.state)
			stack = stack[:len(stack)-1]
			continue
		}
		q := top.next[0]
		top.next = top.next[1:]

		switch w.color[q] {
		case White:
			w.color[q] = Gray
			stack = append(stack, frame{state: q, next: w.successors(q)})
		case Gray:
			// back edge: the cycle is the stack suffix starting at q
			i := len(stack) - 1
			for stack[i].state != q {
				i--
			}
			cycle := make([]int, 0, len(stack)-i+1)
			for _, f := range stack[i:] {
				cycle = append(cycle, f.state)
			}
			return append(cycle, q)
		}
	}

	return nil
}

// run visits every state of w.within in ascending order until a cycle shows up.
func (w *walker) run() []int {
	for _, s := range w.within.Items() {
		if w.color[s] != White {
			continue
		}
		if cycle := w.visit(s); cycle != nil {
			return cycle
		}
	}

	return nil
}

// FindCycle returns one cycle of a as a closed sequence [v0, v1, …, v0],
// or nil if the transition graph is acyclic. Self-loops give [v, v].
func FindCycle(a *automaton.Automaton) ([]int, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}

	return newWalker(a, a.States()).run(), nil
}

// TopologicalOrder returns every state of a ordered so that each transition
// p --c--> q has p before q. Cycles yield ErrCycleDetected naming one cycle.
func TopologicalOrder(a *automaton.Automaton) ([]int, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	w := newWalker(a, a.States())
	if cycle := w.run(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, cycle)
	}
	order := make([]int, len(w.post))
	for i, s := range w.post {
		order[len(w.post)-1-i] = s
	}

	return order, nil
}

// UsefulStates returns the states that are accessible from an initial state
// and from which a final state is accessible.
func UsefulStates(a *automaton.Automaton) *set.Set[int] {
	co := automaton.AccessibleStates(automaton.Mirror(a))

	return automaton.AccessibleStates(a).Intersect(co)
}

// IsFinite reports whether a accepts finitely many words.
func IsFinite(a *automaton.Automaton) (bool, error) {
	if a == nil {
		return false, ErrAutomatonNil
	}

	return newWalker(a, UsefulStates(a)).run() == nil, nil
}
