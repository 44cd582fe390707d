// Package automata is an in-memory toolkit for building, combining and
// querying nondeterministic finite automata over single-character alphabets.
//
// Under the hood, everything is organized under these subpackages:
//
//	set/          generic ordered set used for states and letters
//	automaton/    the Automaton store, recognition (Delta, Accepts) and
//	              structural transforms (Union, Mirror, Shuffle, TranslateAll,
//	              TranslateToAvoid, ReachableFrom, PruneToAccessible)
//	bfs/          breadth-first traversal, witness words, ShortestAccepted
//	dfs/          cycle detection, topological order, IsFinite
//	codec/        YAML/JSON documents, LoadFile/SaveFile
//	cmd/nfa       command-line front end
//
// Quick example:
//
//	a := automaton.FromWord("ab")
//	b := automaton.FromWord("c")
//	sh := automaton.Shuffle(a, b)
//	sh.Accepts("acb") // true
//	sh.Accepts("bac") // false
package automata
