package automaton_test

import (
	"github.com/katalvlaran/automata/automaton"
)

// words returns every word over letters of length 0..maxLen, shortest first.
func words(letters string, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for n := 1; n <= maxLen; n++ {
		var next []string
		for _, w := range layer {
			for _, c := range letters {
				next = append(next, w+string(c))
			}
		}
		out = append(out, next...)
		layer = next
	}

	return out
}

// reverse returns w with its runes in reverse order.
func reverse(w string) string {
	r := []rune(w)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return string(r)
}

// build creates an automaton from transitions and marker lists.
func build(ts []automaton.Transition, initial, final []int) *automaton.Automaton {
	a := automaton.New()
	for _, t := range ts {
		a.AddTransition(t.Origin, t.Letter, t.Dest)
	}
	for _, s := range initial {
		a.AddInitial(s)
	}
	for _, s := range final {
		a.AddFinal(s)
	}

	return a
}

// reachabilityFixture has the component {1, 2, 42} reachable from 1 and an
// unreachable cycle 3 <-> 4.
func reachabilityFixture() *automaton.Automaton {
	return build([]automaton.Transition{
		{Origin: 1, Letter: 'a', Dest: 1},
		{Origin: 1, Letter: 'c', Dest: 42},
		{Origin: 2, Letter: 'c', Dest: 42},
		{Origin: 42, Letter: 'c', Dest: 2},
		{Origin: 3, Letter: 'd', Dest: 4},
		{Origin: 4, Letter: 'd', Dest: 3},
	}, []int{1}, []int{2})
}

// evenAs accepts words over {a, b} with an even number of a's.
func evenAs() *automaton.Automaton {
	return build([]automaton.Transition{
		{Origin: 0, Letter: 'a', Dest: 1},
		{Origin: 1, Letter: 'a', Dest: 0},
		{Origin: 0, Letter: 'b', Dest: 0},
		{Origin: 1, Letter: 'b', Dest: 1},
	}, []int{0}, []int{0})
}

// endsWithBC accepts words over {a, b, c} ending in "bc" (nondeterministic guess).
func endsWithBC() *automaton.Automaton {
	a := build([]automaton.Transition{
		{Origin: 0, Letter: 'a', Dest: 0},
		{Origin: 0, Letter: 'b', Dest: 0},
		{Origin: 0, Letter: 'c', Dest: 0},
		{Origin: 0, Letter: 'b', Dest: 1},
		{Origin: 1, Letter: 'c', Dest: 2},
	}, []int{0}, []int{2})

	return a
}
