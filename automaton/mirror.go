package automaton

// Mirror returns the reversed automaton: initial and final states are
// swapped and every transition p --c--> q becomes q --c--> p.
// The result accepts w iff a accepts the reverse of w.
//
// States and letters not touched by any transition are carried over as
// well, so the result has the same state set and alphabet as a.
func Mirror(a *Automaton) *Automaton {
	res := New()
	res.states = a.states.Clone()
	res.alphabet = a.alphabet.Clone()
	res.initial = a.final.Clone()
	res.final = a.initial.Clone()
	a.ForEachTransition(func(p int, c rune, q int) {
		res.AddTransition(q, c, p)
	})

	return res
}
