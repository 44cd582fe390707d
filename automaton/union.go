package automaton

// Union returns an automaton recognizing L(a) ∪ L(b).
//
// b is first translated above every state id of a, so the two state spaces
// are disjoint; the result's sets are element-wise unions and its transition
// index is rebuilt edge by edge. Neither input is modified or aliased.
// Complexity: O(V + E log E)
func Union(a, b *Automaton) *Automaton {
	shifted := TranslateToAvoid(b, a)

	res := New()
	res.states = a.states.Union(shifted.states)
	res.alphabet = a.alphabet.Union(shifted.alphabet)
	res.initial = a.initial.Union(shifted.initial)
	res.final = a.final.Union(shifted.final)

	a.ForEachTransition(res.AddTransition)
	shifted.ForEachTransition(res.AddTransition)

	return res
}
