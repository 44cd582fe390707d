// Package automaton declares the Automaton, Key and Transition types,
// sentinel errors, and the New constructor.
package automaton

import (
	"errors"
	"math"

	"github.com/katalvlaran/automata/set"
)

// ErrInvariant marks a violated structural invariant reported by Validate.
var ErrInvariant = errors.New("automaton: invariant violated")

const (
	// NoMaxState is returned by MaxState on an automaton without states.
	// It lies below every valid state id.
	NoMaxState = math.MinInt

	// NoMinState is returned by MinState on an automaton without states.
	// It lies above every valid state id.
	NoMinState = math.MaxInt
)

// Key identifies one entry of the transition index: the origin state and
// the letter read from it.
type Key struct {
	Origin int
	Letter rune
}

// Compare orders keys by origin first, then by letter.
// It returns -1, 0 or +1.
func (k Key) Compare(other Key) int {
	switch {
	case k.Origin < other.Origin:
		return -1
	case k.Origin > other.Origin:
		return 1
	case k.Letter < other.Letter:
		return -1
	case k.Letter > other.Letter:
		return 1
	}

	return 0
}

// Transition is one edge Origin --Letter--> Dest of the transition relation.
type Transition struct {
	Origin int
	Letter rune
	Dest   int
}

// Automaton is a nondeterministic finite automaton.
//
// It exclusively owns its state sets and its transition index, including
// every destination set stored in the index. No operation of this package
// lets two automata share mutable storage.
type Automaton struct {
	states   *set.Set[int]
	alphabet *set.Set[rune]
	initial  *set.Set[int]
	final    *set.Set[int]

	// transitions[Key{p, c}] = {q | p --c--> q}
	transitions map[Key]*set.Set[int]

	// empty is handed out by Neighbors on a miss and is never mutated.
	empty *set.Set[int]
}

// New creates an empty automaton: no states, no letters, no transitions.
// Complexity: O(1)
func New() *Automaton {
	return &Automaton{
		states:      set.New[int](),
		alphabet:    set.New[rune](),
		initial:     set.New[int](),
		final:       set.New[int](),
		transitions: make(map[Key]*set.Set[int]),
		empty:       set.New[int](),
	}
}
