package automaton

// FromWord returns the chain automaton recognizing exactly {word}:
// states 0..n for a word of n runes, transitions i --word[i]--> i+1,
// initial {0} and final {n}. The empty word gives a single state that is
// both initial and final.
func FromWord(word string) *Automaton {
	a := New()
	i := 0
	for _, c := range word {
		a.AddTransition(i, c, i+1)
		i++
	}
	a.AddInitial(0)
	a.AddFinal(i)

	return a
}
