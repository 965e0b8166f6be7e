package share

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of distinct values. The zero value is an
// empty set ready to use. Copies share storage, so treat a Set as immutable
// once it has been handed to someone else.
type Set[V comparable] struct {
	data map[V]struct{}
}

func NewSet[V comparable](values ...V) Set[V] {
	var s Set[V]
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s *Set[V]) m() map[V]struct{} {
	if s.data == nil {
		s.data = make(map[V]struct{})
	}
	return s.data
}

func (s *Set[V]) Add(v V) {
	s.m()[v] = struct{}{}
}

func (s *Set[V]) Remove(v V) {
	delete(s.m(), v)
}

func (s Set[V]) Len() int {
	return len(s.data)
}

func (s Set[V]) Has(v V) bool {
	_, ok := s.data[v]
	return ok
}

// Intersect returns a new set holding the values present in both s and o.
func (s Set[V]) Intersect(o Set[V]) Set[V] {
	small, large := s, o
	if large.Len() < small.Len() {
		small, large = large, small
	}
	var r Set[V]
	for v := range small.data {
		if large.Has(v) {
			r.Add(v)
		}
	}
	return r
}

// Equal reports whether s and o hold exactly the same values.
func (s Set[V]) Equal(o Set[V]) bool {
	if s.Len() != o.Len() {
		return false
	}
	for v := range s.data {
		if !o.Has(v) {
			return false
		}
	}
	return true
}

// Values returns the members in no particular order.
func (s Set[V]) Values() []V {
	values := make([]V, 0, s.Len())
	for v := range s.data {
		values = append(values, v)
	}
	return values
}

// Sorted returns the members of s in ascending order.
func Sorted[V cmp.Ordered](s Set[V]) []V {
	values := s.Values()
	slices.Sort(values)
	return values
}
