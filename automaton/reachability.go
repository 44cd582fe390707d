// File: reachability.go
// Role: Accessible-state closure and accessibility pruning.
//
// The closure is computed with an explicit frontier: each round takes the
// one-letter images of the frontier over the whole alphabet, subtracts the
// visited set, and continues only with the genuinely new states. visited
// only grows and Q is finite, so the loop ends after at most |Q| rounds.
package automaton

import "github.com/katalvlaran/automata/set"

// ReachableFrom returns every state reachable from start through zero or
// more transitions, start included.
// Complexity: O(V·|Σ| + E)
func ReachableFrom(a *Automaton, start int) *set.Set[int] {
	return a.closure(set.New(start))
}

// AccessibleStates returns the states reachable from some initial state,
// the initial states included.
func AccessibleStates(a *Automaton) *set.Set[int] {
	return a.closure(a.initial)
}

// closure returns the least superset of seeds closed under one-letter
// transitions. seeds is not modified.
func (a *Automaton) closure(seeds *set.Set[int]) *set.Set[int] {
	visited := seeds.Clone()
	frontier := seeds.Clone()
	letters := a.alphabet.Items()

	for !frontier.IsEmpty() {
		image := set.New[int]()
		for _, c := range letters {
			image.AddAll(a.Delta(frontier, c))
		}
		fresh := image.Difference(visited)
		visited.AddAll(fresh)
		frontier = fresh
	}

	return visited
}

// PruneToAccessible returns a copy of a restricted to its accessible part:
//
//   - initial states are copied unchanged;
//   - final states are intersected with AccessibleStates(a);
//   - only transitions whose origin is accessible are kept. Their
//     destinations are accessible by construction.
//
// The state set and the alphabet are copied as they are; inaccessible
// states remain in the result without transitions or final marks.
// The result recognizes exactly L(a).
func PruneToAccessible(a *Automaton) *Automaton {
	acc := AccessibleStates(a)

	res := New()
	res.states = a.states.Clone()
	res.alphabet = a.alphabet.Clone()
	res.initial = a.initial.Clone()
	res.final = a.final.Intersect(acc)
	for k, dests := range a.transitions {
		if acc.Has(k.Origin) {
			res.transitions[k] = dests.Clone()
		}
	}

	return res
}
