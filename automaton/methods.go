// File: methods.go
// Role: Elementary mutators, membership queries and read accessors.
//
// Determinism:
//   - Transitions() and ForEachTransition enumerate by (origin, letter, dest) ascending.
//
// Ownership:
//   - States/Initial/Final/Alphabet return copies; Neighbors returns stored
//     storage and must be treated as read-only.
package automaton

import (
	"sort"

	"github.com/katalvlaran/automata/set"
)

// AddState inserts s into the state set (idempotent).
func (a *Automaton) AddState(s int) {
	a.states.Add(s)
}

// AddLetter inserts c into the alphabet (idempotent).
func (a *Automaton) AddLetter(c rune) {
	a.alphabet.Add(c)
}

// AddTransition records origin --letter--> dest.
//
// Both endpoints become states and the letter joins the alphabet, so the
// structural invariants hold after every call. The destination set for
// Key{origin, letter} is created on first use.
// Complexity: O(1) amortized.
func (a *Automaton) AddTransition(origin int, letter rune, dest int) {
	a.AddState(origin)
	a.AddState(dest)
	a.AddLetter(letter)

	k := Key{Origin: origin, Letter: letter}
	dests, ok := a.transitions[k]
	if !ok {
		dests = set.New[int]()
		a.transitions[k] = dests
	}
	dests.Add(dest)
}

// AddInitial marks s as an initial state, adding it to the state set first.
func (a *Automaton) AddInitial(s int) {
	a.AddState(s)
	a.initial.Add(s)
}

// AddFinal marks s as a final state, adding it to the state set first.
func (a *Automaton) AddFinal(s int) {
	a.AddState(s)
	a.final.Add(s)
}

// Neighbors returns the destinations reachable from origin by reading letter.
//
// The returned set is the automaton's own storage (or a shared empty
// sentinel on a miss); callers must not modify it. Use Delta1 for a copy.
// Complexity: O(1), no allocation.
func (a *Automaton) Neighbors(origin int, letter rune) *set.Set[int] {
	if dests, ok := a.transitions[Key{Origin: origin, Letter: letter}]; ok {
		return dests
	}

	return a.empty
}

// HasState reports whether s is a state.
func (a *Automaton) HasState(s int) bool { return a.states.Has(s) }

// IsInitial reports whether s is an initial state.
func (a *Automaton) IsInitial(s int) bool { return a.initial.Has(s) }

// IsFinal reports whether s is a final state.
func (a *Automaton) IsFinal(s int) bool { return a.final.Has(s) }

// HasLetter reports whether c belongs to the alphabet.
func (a *Automaton) HasLetter(c rune) bool { return a.alphabet.Has(c) }

// HasTransition reports whether origin --letter--> dest is recorded.
func (a *Automaton) HasTransition(origin int, letter rune, dest int) bool {
	return a.Neighbors(origin, letter).Has(dest)
}

// States returns a copy of the state set.
func (a *Automaton) States() *set.Set[int] { return a.states.Clone() }

// Initial returns a copy of the initial state set.
func (a *Automaton) Initial() *set.Set[int] { return a.initial.Clone() }

// Final returns a copy of the final state set.
func (a *Automaton) Final() *set.Set[int] { return a.final.Clone() }

// Alphabet returns a copy of the alphabet.
func (a *Automaton) Alphabet() *set.Set[rune] { return a.alphabet.Clone() }

// StateCount returns |Q|.
func (a *Automaton) StateCount() int { return a.states.Len() }

// TransitionCount returns the number of (origin, letter, dest) triples.
func (a *Automaton) TransitionCount() int {
	n := 0
	for _, dests := range a.transitions {
		n += dests.Len()
	}

	return n
}

// sortedKeys returns the transition index keys ordered by Key.Compare.
func (a *Automaton) sortedKeys() []Key {
	keys := make([]Key, 0, len(a.transitions))
	for k := range a.transitions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })

	return keys
}

// ForEachTransition calls fn once per transition, ordered by origin,
// letter, then destination.
func (a *Automaton) ForEachTransition(fn func(origin int, letter rune, dest int)) {
	for _, k := range a.sortedKeys() {
		for _, q := range a.transitions[k].Items() {
			fn(k.Origin, k.Letter, q)
		}
	}
}

// Transitions returns every transition, ordered as in ForEachTransition.
// Complexity: O(E log E)
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, 0, a.TransitionCount())
	a.ForEachTransition(func(p int, c rune, q int) {
		out = append(out, Transition{Origin: p, Letter: c, Dest: q})
	})

	return out
}

// Clone returns a deep copy of a: states, alphabet, markers and every
// destination set are duplicated.
// Complexity: O(V + E)
func (a *Automaton) Clone() *Automaton {
	c := New()
	c.states = a.states.Clone()
	c.alphabet = a.alphabet.Clone()
	c.initial = a.initial.Clone()
	c.final = a.final.Clone()
	for k, dests := range a.transitions {
		c.transitions[k] = dests.Clone()
	}

	return c
}
