package automaton

import "github.com/katalvlaran/automata/set"

// Delta1 returns a fresh copy of the destinations of origin on letter.
func (a *Automaton) Delta1(origin int, letter rune) *set.Set[int] {
	return a.Neighbors(origin, letter).Clone()
}

// Delta returns the one-letter image of from: the union, over every state
// p in from, of the destinations of p on letter.
// The result is a new set; from is not modified.
func (a *Automaton) Delta(from *set.Set[int], letter rune) *set.Set[int] {
	out := set.New[int]()
	from.Each(func(p int) {
		out.AddAll(a.Neighbors(p, letter))
	})

	return out
}

// DeltaStar returns the image of from after reading every rune of word in
// order. The empty word yields a copy of from.
func (a *Automaton) DeltaStar(from *set.Set[int], word string) *set.Set[int] {
	cur := from.Clone()
	for _, c := range word {
		if cur.IsEmpty() {
			break
		}
		cur = a.Delta(cur, c)
	}

	return cur
}

// Accepts reports whether word is recognized: some state reached from an
// initial state by reading word is final.
func (a *Automaton) Accepts(word string) bool {
	reached := a.DeltaStar(a.initial, word)
	for _, q := range reached.Items() {
		if a.final.Has(q) {
			return true
		}
	}

	return false
}
