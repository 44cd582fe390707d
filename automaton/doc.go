// Package automaton provides an in-memory nondeterministic finite automaton
// (NFA) over single-character alphabets, together with the algebraic and
// graph operations used to combine and query automata.
//
// The Automaton A = (Q, Σ, I, F, δ) stores:
//
//   - Q: state identifiers (int)
//   - Σ: letters (rune)
//   - I, F: initial and final states, both subsets of Q
//   - δ: transition index, (origin, letter) → set of destinations
//
// Core Methods:
//
//	// Building
//	New() *Automaton
//	AddState(s int), AddLetter(c rune)
//	AddTransition(origin int, letter rune, dest int)
//	AddInitial(s int), AddFinal(s int)
//
//	// Query
//	Neighbors(origin, letter) *set.Set[int]   // read-only, never allocates
//	HasState, IsInitial, IsFinal, HasLetter, HasTransition
//	Transitions() []Transition                // sorted by (origin, letter, dest)
//
//	// Recognition
//	Delta1, Delta, DeltaStar, Accepts
//
// Structural transforms (each returns a new, independent automaton):
//
//	TranslateAll(a, offset)      shift every state id
//	TranslateToAvoid(a, other)   shift a above every id of other
//	Union(a, b)                  L(a) ∪ L(b)
//	Mirror(a)                    reverse of L(a)
//	Shuffle(a, b)                interleavings of L(a) and L(b)
//	PruneToAccessible(a)         drop transitions and finals not reachable from I
//
// Reachability (ReachableFrom, AccessibleStates) uses an explicit worklist:
// the visited set grows monotonically over a finite state space, so the loop
// terminates without recursion regardless of the graph's diameter.
//
// Querying an absent (origin, letter) pair is never an error; it yields the
// empty set. An Automaton is not safe for concurrent mutation.
package automaton
