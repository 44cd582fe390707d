package automaton

// Pair is a state of a product automaton: Left from the first operand,
// Right from the second.
type Pair struct {
	Left  int
	Right int
}

// PairIndex numbers the pairs of Q(a) × Q(b) densely.
//
// The id of (i, j) is rank_a(i)·|Q(b)| + rank_b(j), where rank is the
// position of the state in ascending order. Ranks are bounded by the state
// counts, so the numbering is injective for any state ids, negative or
// wider than any fixed bit width.
type PairIndex struct {
	left, right         []int
	leftRank, rightRank map[int]int
}

// NewPairIndex builds the index over the current states of a and b.
func NewPairIndex(a, b *Automaton) *PairIndex {
	x := &PairIndex{left: a.states.Items(), right: b.states.Items()}
	x.leftRank = ranks(x.left)
	x.rightRank = ranks(x.right)

	return x
}

// ranks maps each element of sorted to its position.
func ranks(sorted []int) map[int]int {
	r := make(map[int]int, len(sorted))
	for pos, s := range sorted {
		r[s] = pos
	}

	return r
}

// Len returns the number of pairs, |Q(a)|·|Q(b)|.
func (x *PairIndex) Len() int { return len(x.left) * len(x.right) }

// Encode returns the id of (i, j), or false if i or j is not indexed.
func (x *PairIndex) Encode(i, j int) (int, bool) {
	ri, ok := x.leftRank[i]
	if !ok {
		return 0, false
	}
	rj, ok := x.rightRank[j]
	if !ok {
		return 0, false
	}

	return ri*len(x.right) + rj, true
}

// Decode returns the pair numbered id, or false if id is out of range.
func (x *PairIndex) Decode(id int) (Pair, bool) {
	if id < 0 || id >= x.Len() {
		return Pair{}, false
	}
	w := len(x.right)

	return Pair{Left: x.left[id/w], Right: x.right[id%w]}, true
}

// mustEncode is Encode for pairs known to be indexed.
func (x *PairIndex) mustEncode(i, j int) int {
	id, ok := x.Encode(i, j)
	if !ok {
		panic("automaton: pair outside index")
	}

	return id
}

// Shuffle returns an automaton recognizing the shuffle (interleaving
// closure) of L(a) and L(b). Product states are numbered by NewPairIndex.
func Shuffle(a, b *Automaton) *Automaton {
	res, _ := ShuffleWithIndex(a, b)

	return res
}

// ShuffleWithIndex is Shuffle that also returns the PairIndex used to name
// product states, so callers can map a product id back to its pair.
//
// From (i, j), each i --c--> i' of a yields (i, j) --c--> (i', j), and each
// j --c--> j' of b yields (i, j) --c--> (i, j'). A pair is initial (final)
// iff both components are.
// Complexity: O(|Q(a)|·|Q(b)|·(|Σa| + |Σb|) + transitions added)
func ShuffleWithIndex(a, b *Automaton) (*Automaton, *PairIndex) {
	idx := NewPairIndex(a, b)
	res := New()
	res.alphabet = a.alphabet.Union(b.alphabet)

	lettersA := a.alphabet.Items()
	lettersB := b.alphabet.Items()
	for _, i := range idx.left {
		for _, j := range idx.right {
			from := idx.mustEncode(i, j)
			res.AddState(from)
			if a.IsInitial(i) && b.IsInitial(j) {
				res.AddInitial(from)
			}
			if a.IsFinal(i) && b.IsFinal(j) {
				res.AddFinal(from)
			}
			for _, c := range lettersA {
				a.Neighbors(i, c).Each(func(ii int) {
					res.AddTransition(from, c, idx.mustEncode(ii, j))
				})
			}
			for _, c := range lettersB {
				b.Neighbors(j, c).Each(func(jj int) {
					res.AddTransition(from, c, idx.mustEncode(i, jj))
				})
			}
		}
	}

	return res, idx
}
