package set

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Set is an unordered collection of distinct ordered elements with
// deterministic, ascending enumeration.
type Set[T constraints.Ordered] struct {
	items map[T]struct{}
}

// New returns a set holding the given items.
func New[T constraints.Ordered](items ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(items))}
	for _, it := range items {
		s.items[it] = struct{}{}
	}

	return s
}

// Add inserts x; adding an element already present is a no-op.
func (s *Set[T]) Add(x T) {
	s.items[x] = struct{}{}
}

// AddAll inserts every element of other into s.
func (s *Set[T]) AddAll(other *Set[T]) {
	if other == nil {
		return
	}
	for x := range other.items {
		s.items[x] = struct{}{}
	}
}

// Has reports whether x is in s. A nil set contains nothing.
func (s *Set[T]) Has(x T) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[x]

	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// IsEmpty reports whether s holds no element.
func (s *Set[T]) IsEmpty() bool { return s.Len() == 0 }

// Items returns the elements sorted ascending. The slice is freshly allocated.
func (s *Set[T]) Items() []T {
	if s == nil {
		return nil
	}
	out := maps.Keys(s.items)
	slices.Sort(out)

	return out
}

// Each calls fn for every element in ascending order.
func (s *Set[T]) Each(fn func(T)) {
	for _, x := range s.Items() {
		fn(x)
	}
}

// Fold reduces the set in ascending order, starting from init.
func Fold[T constraints.Ordered, A any](s *Set[T], init A, fn func(acc A, x T) A) A {
	acc := init
	for _, x := range s.Items() {
		acc = fn(acc, x)
	}

	return acc
}

// Clone returns an independent copy of s.
func (s *Set[T]) Clone() *Set[T] {
	c := &Set[T]{items: make(map[T]struct{}, s.Len())}
	if s != nil {
		for x := range s.items {
			c.items[x] = struct{}{}
		}
	}

	return c
}

// Union returns a new set holding the elements of s and other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	u := s.Clone()
	u.AddAll(other)

	return u
}

// Intersect returns a new set holding the elements present in both s and other.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	out := New[T]()
	if small == nil {
		return out
	}
	for x := range small.items {
		if large.Has(x) {
			out.items[x] = struct{}{}
		}
	}

	return out
}

// Difference returns a new set holding the elements of s absent from other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	out := New[T]()
	if s == nil {
		return out
	}
	for x := range s.items {
		if !other.Has(x) {
			out.items[x] = struct{}{}
		}
	}

	return out
}

// Equal reports whether s and other hold exactly the same elements.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil {
		return true
	}
	for x := range s.items {
		if !other.Has(x) {
			return false
		}
	}

	return true
}

// String renders the set as "{a, b, c}" in ascending order.
func (s *Set[T]) String() string {
	return s.Format(func(x T) string { return fmt.Sprint(x) })
}

// Format renders the set like String, using fn for each element.
func (s *Set[T]) Format(fn func(T) string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range s.Items() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fn(x))
	}
	b.WriteByte('}')

	return b.String()
}
