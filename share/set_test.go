package share

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestZeroSet(t *testing.T) {
	var s Set[string]

	if got, want := s.Len(), 0; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if s.Has("x") {
		t.Errorf("Has(%q) = true, want false", "x")
	}
	s.Add("x")
	s.Add("x")
	if got, want := s.Len(), 1; got != want {
		t.Errorf("Len() after duplicate Add = %d, want %d", got, want)
	}
	s.Remove("x")
	if got, want := s.Len(), 0; got != want {
		t.Errorf("Len() after Remove = %d, want %d", got, want)
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Set[int]
		want []int
	}{
		{"disjoint", NewSet(1, 2), NewSet(3, 4), []int{}},
		{"partial", NewSet(1, 2, 3), NewSet(3, 4, 5), []int{3}},
		{"subset", NewSet(2, 3), NewSet(1, 2, 3, 4), []int{2, 3}},
		{"empty", NewSet[int](), NewSet(1), []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sorted(tt.a.Intersect(tt.b))
			if !cmp.Equal(got, tt.want) {
				t.Errorf("Intersect: -want +got\n%s", cmp.Diff(tt.want, got))
			}
			if back := Sorted(tt.b.Intersect(tt.a)); !cmp.Equal(back, got) {
				t.Errorf("Intersect is not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestIntersectLeavesOperandsAlone(t *testing.T) {
	a, b := NewSet(1, 2), NewSet(2, 3)

	r := a.Intersect(b)
	r.Add(9)

	if a.Has(9) || b.Has(9) {
		t.Errorf("mutating the intersection changed an operand")
	}
}

func TestEqual(t *testing.T) {
	if !NewSet(1.5, 2).Equal(NewSet(2, 1.5, 2)) {
		t.Errorf("sets with the same members compare unequal")
	}
	if NewSet(1, 2).Equal(NewSet(1, 3)) {
		t.Errorf("sets with different members compare equal")
	}
	if !NewSet[int]().Equal(Set[int]{}) {
		t.Errorf("empty sets compare unequal")
	}
}

func TestSorted(t *testing.T) {
	got := Sorted(NewSet(11.0, 2, 7.5, -1))
	want := []float64{-1, 2, 7.5, 11}
	if !cmp.Equal(got, want) {
		t.Errorf("Sorted(): -want +got\n%s", cmp.Diff(want, got))
	}
}
