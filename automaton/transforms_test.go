package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/automata/automaton"
	"github.com/katalvlaran/automata/set"
)

// TransformSuite covers translation, union, mirror, reachability and shuffle.
type TransformSuite struct {
	suite.Suite
}

// TestMinMaxState checks the extrema folds.
func (s *TransformSuite) TestMinMaxState() {
	a := reachabilityFixture()
	require.Equal(s.T(), 42, a.MaxState())
	require.Equal(s.T(), 1, a.MinState())
}

// TestTranslateAll shifts every id and keeps the alphabet.
func (s *TransformSuite) TestTranslateAll() {
	a := evenAs()
	t := automaton.TranslateAll(a, 10)
	require.Equal(s.T(), []int{10, 11}, t.States().Items())
	require.Equal(s.T(), []int{10}, t.Initial().Items())
	require.Equal(s.T(), []int{10}, t.Final().Items())
	require.True(s.T(), t.Alphabet().Equal(a.Alphabet()))
	require.True(s.T(), t.HasTransition(10, 'a', 11))
	require.True(s.T(), t.HasTransition(11, 'b', 11))
	require.Equal(s.T(), a.TransitionCount(), t.TransitionCount())
}

// TestTranslateToAvoid checks the postcondition, including negative ids.
func (s *TransformSuite) TestTranslateToAvoid() {
	a := automaton.New()
	a.AddTransition(-5, 'x', 3)
	other := automaton.New()
	other.AddState(10)
	other.AddState(7)

	t := automaton.TranslateToAvoid(a, other)
	require.Equal(s.T(), []int{11, 19}, t.States().Items())
	require.Greater(s.T(), t.MinState(), other.MaxState())
	require.True(s.T(), t.HasTransition(11, 'x', 19))
}

// TestTranslateToAvoidEmpty returns unmodified copies when either side has no state.
func (s *TransformSuite) TestTranslateToAvoidEmpty() {
	a := evenAs()
	empty := automaton.New()

	c := automaton.TranslateToAvoid(a, empty)
	require.Equal(s.T(), a.Transitions(), c.Transitions())
	c.AddState(100)
	require.False(s.T(), a.HasState(100), "copy must not alias the source")

	e := automaton.TranslateToAvoid(empty, a)
	require.Zero(s.T(), e.StateCount())
}

// TestUnionLaw verifies L(union(a,b)) = L(a) ∪ L(b) on every short word.
func (s *TransformSuite) TestUnionLaw() {
	a, b := evenAs(), endsWithBC()
	u := automaton.Union(a, b)
	require.Equal(s.T(), a.StateCount()+b.StateCount(), u.StateCount())
	require.NoError(s.T(), u.Validate())
	for _, w := range words("abc", 5) {
		require.Equal(s.T(), a.Accepts(w) || b.Accepts(w), u.Accepts(w), "word %q", w)
	}
}

// TestUnionNoAliasing checks that the union shares no storage with its operands.
func (s *TransformSuite) TestUnionNoAliasing() {
	a, b := evenAs(), evenAs()
	u := automaton.Union(a, b)
	u.AddTransition(0, 'z', 0)
	require.False(s.T(), a.HasLetter('z'))
	require.False(s.T(), b.HasTransition(0, 'z', 0))
	require.Equal(s.T(), []int{0, 1}, b.States().Items(), "operand b must not be translated in place")
}

// TestUnionWithEmpty keeps the language of the non-empty operand.
func (s *TransformSuite) TestUnionWithEmpty() {
	a := endsWithBC()
	u := automaton.Union(a, automaton.New())
	v := automaton.Union(automaton.New(), a)
	for _, w := range words("abc", 4) {
		require.Equal(s.T(), a.Accepts(w), u.Accepts(w), "word %q", w)
		require.Equal(s.T(), a.Accepts(w), v.Accepts(w), "word %q", w)
	}
}

// TestMirrorConcrete pins the reversal of a two-state automaton.
func (s *TransformSuite) TestMirrorConcrete() {
	a := build([]automaton.Transition{
		{Origin: 1, Letter: 'a', Dest: 1},
		{Origin: 1, Letter: 'b', Dest: 2},
	}, []int{1}, []int{2})
	m := automaton.Mirror(a)
	require.Equal(s.T(), []int{2}, m.Initial().Items())
	require.Equal(s.T(), []int{1}, m.Final().Items())
	require.Equal(s.T(), []automaton.Transition{
		{Origin: 1, Letter: 'a', Dest: 1},
		{Origin: 2, Letter: 'b', Dest: 1},
	}, m.Transitions())
}

// TestMirrorLaw verifies L(mirror(a)) = reverse(L(a)).
func (s *TransformSuite) TestMirrorLaw() {
	for _, a := range []*automaton.Automaton{evenAs(), endsWithBC(), automaton.FromWord("abc")} {
		m := automaton.Mirror(a)
		for _, w := range words("abc", 5) {
			require.Equal(s.T(), a.Accepts(w), m.Accepts(reverse(w)), "word %q", w)
		}
	}
}

// TestMirrorKeepsIsolatedStates keeps states without transitions.
func (s *TransformSuite) TestMirrorKeepsIsolatedStates() {
	a := automaton.New()
	a.AddState(9)
	a.AddLetter('q')
	m := automaton.Mirror(a)
	require.True(s.T(), m.HasState(9))
	require.True(s.T(), m.HasLetter('q'))
}

// TestReachableFromConcrete pins the closure of the reference fixture.
func (s *TransformSuite) TestReachableFromConcrete() {
	a := reachabilityFixture()
	got := automaton.ReachableFrom(a, 1)
	require.True(s.T(), got.Equal(set.New(1, 2, 42)), "got %v", got)
	require.True(s.T(), automaton.ReachableFrom(a, 3).Equal(set.New(3, 4)))
	require.True(s.T(), automaton.ReachableFrom(a, 77).Equal(set.New(77)), "unknown start reaches itself only")
}

// TestReachableLongChain ensures a long chain is handled without recursion.
func (s *TransformSuite) TestReachableLongChain() {
	const n = 100000
	a := automaton.New()
	for i := 0; i < n; i++ {
		a.AddTransition(i, 'a', i+1)
	}
	require.Equal(s.T(), n+1, automaton.ReachableFrom(a, 0).Len())
}

// TestAccessibleStates unions closures over every initial state.
func (s *TransformSuite) TestAccessibleStates() {
	a := reachabilityFixture()
	require.True(s.T(), automaton.AccessibleStates(a).Equal(set.New(1, 2, 42)))
	a.AddInitial(4)
	require.True(s.T(), automaton.AccessibleStates(a).Equal(set.New(1, 2, 3, 4, 42)))
}

// TestPruneToAccessible checks the trimmed finals and transitions and the untouched state set.
func (s *TransformSuite) TestPruneToAccessible() {
	a := reachabilityFixture()
	a.AddFinal(3)
	p := automaton.PruneToAccessible(a)

	require.True(s.T(), p.States().Equal(a.States()), "raw state set is kept as is")
	require.Equal(s.T(), []int{1}, p.Initial().Items())
	require.Equal(s.T(), []int{2}, p.Final().Items())
	require.False(s.T(), p.HasTransition(3, 'd', 4))
	require.False(s.T(), p.HasTransition(4, 'd', 3))
	require.True(s.T(), p.HasTransition(42, 'c', 2))
	require.Equal(s.T(), 4, p.TransitionCount())
	require.NoError(s.T(), p.Validate())
}

// TestPruneNeutrality verifies that pruning never changes the language.
func (s *TransformSuite) TestPruneNeutrality() {
	a := reachabilityFixture()
	a.AddFinal(4)
	p := automaton.PruneToAccessible(a)
	for _, w := range words("acd", 5) {
		require.Equal(s.T(), a.Accepts(w), p.Accepts(w), "word %q", w)
	}
}

// TestShuffleConcrete pins the interleavings of "ab" and "c".
func (s *TransformSuite) TestShuffleConcrete() {
	sh := automaton.Shuffle(automaton.FromWord("ab"), automaton.FromWord("c"))
	var accepted []string
	for _, w := range words("abc", 4) {
		if sh.Accepts(w) {
			accepted = append(accepted, w)
		}
	}
	require.ElementsMatch(s.T(), []string{"abc", "acb", "cab"}, accepted)
	require.False(s.T(), sh.Accepts("bac"))
	require.Equal(s.T(), 6, sh.StateCount())
}

// TestShuffleLaw compares the product with a brute-force interleaving check.
func (s *TransformSuite) TestShuffleLaw() {
	a, b := evenAs(), endsWithBC()
	sh := automaton.Shuffle(a, b)
	require.NoError(s.T(), sh.Validate())
	for _, w := range words("abc", 4) {
		require.Equal(s.T(), isShuffle(a, b, w), sh.Accepts(w), "word %q", w)
	}
}

// TestShuffleWideIDs uses ids wider than 16 bits and negative ids.
func (s *TransformSuite) TestShuffleWideIDs() {
	a := automaton.TranslateAll(automaton.FromWord("ab"), 1<<20)
	b := automaton.TranslateAll(automaton.FromWord("c"), -(1 << 18))
	sh, idx := automaton.ShuffleWithIndex(a, b)
	require.Equal(s.T(), 6, sh.StateCount())
	require.True(s.T(), sh.Accepts("acb"))
	require.False(s.T(), sh.Accepts("bca"))

	seen := map[int]automaton.Pair{}
	for _, i := range a.States().Items() {
		for _, j := range b.States().Items() {
			id, ok := idx.Encode(i, j)
			require.True(s.T(), ok)
			prev, dup := seen[id]
			require.False(s.T(), dup, "(%d,%d) collides with %v", i, j, prev)
			seen[id] = automaton.Pair{Left: i, Right: j}

			back, ok := idx.Decode(id)
			require.True(s.T(), ok)
			require.Equal(s.T(), automaton.Pair{Left: i, Right: j}, back)
		}
	}
	_, ok := idx.Encode(12345, 0)
	require.False(s.T(), ok)
	_, ok = idx.Decode(idx.Len())
	require.False(s.T(), ok)
}

// isShuffle reports whether w splits into an interleaving of u ∈ L(a) and v ∈ L(b).
func isShuffle(a, b *automaton.Automaton, w string) bool {
	r := []rune(w)
	for mask := 0; mask < 1<<len(r); mask++ {
		var u, v []rune
		for i, c := range r {
			if mask&(1<<i) != 0 {
				u = append(u, c)
			} else {
				v = append(v, c)
			}
		}
		if a.Accepts(string(u)) && b.Accepts(string(v)) {
			return true
		}
	}

	return false
}

func TestTransformSuite(t *testing.T) {
	suite.Run(t, new(TransformSuite))
}
