package automaton

import "github.com/katalvlaran/automata/set"

// MaxState returns the greatest state id, or NoMaxState when a has no state.
// Callers must check StateCount before doing arithmetic on the result.
func (a *Automaton) MaxState() int {
	return set.Fold(a.states, NoMaxState, func(acc, s int) int {
		if s > acc {
			return s
		}
		return acc
	})
}

// MinState returns the smallest state id, or NoMinState when a has no state.
// Callers must check StateCount before doing arithmetic on the result.
func (a *Automaton) MinState() int {
	return set.Fold(a.states, NoMinState, func(acc, s int) int {
		if s < acc {
			return s
		}
		return acc
	})
}

// TranslateAll returns a copy of a in which every state id, including
// initial, final and transition endpoints, is shifted by offset.
// The alphabet is unchanged.
// Complexity: O(V + E)
func TranslateAll(a *Automaton, offset int) *Automaton {
	res := New()
	a.states.Each(func(s int) { res.AddState(s + offset) })
	a.initial.Each(func(s int) { res.AddInitial(s + offset) })
	a.final.Each(func(s int) { res.AddFinal(s + offset) })
	a.alphabet.Each(res.AddLetter)
	a.ForEachTransition(func(p int, c rune, q int) {
		res.AddTransition(p+offset, c, q+offset)
	})

	return res
}

// TranslateToAvoid returns a copy of a whose state ids all exceed every
// state id of other. If either automaton has no state, a plain copy of a
// is returned.
func TranslateToAvoid(a, other *Automaton) *Automaton {
	if a.StateCount() == 0 || other.StateCount() == 0 {
		return a.Clone()
	}
	offset := other.MaxState() - a.MinState() + 1

	return TranslateAll(a, offset)
}
