// Package venn decides how up to three sets of numbers are drawn as a
// Venn-like diagram.
package venn

import (
	"errors"
	"fmt"

	"readySet/share"
)

// MaxSets is the largest number of sets Classify accepts.
const MaxSets = 3

// Layout hints. They only scale the drawing.
const (
	GapScale    = 30.0
	OffsetScale = 15.0
	elementSize = 30.0
	emptySize   = 20.0
)

var (
	ErrTooManySets = errors.New("too many sets")
	ErrNoChain     = errors.New("no set overlaps both others")
)

// Classify returns the diagram for sets, in input order. The result holds a
// single node when one composite covers every set, otherwise the sets left
// unrelated come first followed by at most one composite.
//
// Classify panics when given more than MaxSets sets.
func Classify(sets []UserSet) []Node {
	if len(sets) > MaxSets {
		panic(fmt.Errorf("%w: %d (max %d)", ErrTooManySets, len(sets), MaxSets))
	}
	plain := make([]PlainSet, len(sets))
	nodes := make([]Node, len(sets))
	for i, s := range sets {
		plain[i] = PlainSet{Set: s}
		nodes[i] = plain[i]
	}
	switch len(plain) {
	case 2:
		if n, ok := pair(plain[0], plain[1]); ok {
			return []Node{n}
		}
	case 3:
		return triple(plain[0], plain[1], plain[2])
	}
	return nodes
}

// pair applies the two-set rule. It reports false when a and b share
// nothing.
func pair(a, b PlainSet) (Node, bool) {
	common := a.Set.Elements.Intersect(b.Set.Elements)
	switch {
	case common.Len() == 0:
		return nil, false
	case common.Len() == a.Set.Len() || common.Len() == b.Set.Len():
		// identical sets keep the first one outside
		if a.Set.Len() < b.Set.Len() {
			return contain(AlignCenter, b, a), true
		}
		return contain(AlignCenter, a, b), true
	}
	return intersect(a, b, common), true
}

func triple(s1, s2, s3 PlainSet) []Node {
	shared := s1.Set.Elements.Intersect(s2.Set.Elements).Intersect(s3.Set.Elements)
	if shared.Len() > 0 {
		return []Node{threeway(s1, s2, s3, shared)}
	}

	i12 := s1.Set.Elements.Intersect(s2.Set.Elements).Len()
	i13 := s1.Set.Elements.Intersect(s3.Set.Elements).Len()
	i23 := s2.Set.Elements.Intersect(s3.Set.Elements).Len()
	overlaps := 0
	for _, n := range []int{i12, i13, i23} {
		if n > 0 {
			overlaps++
		}
	}

	if overlaps > 1 {
		switch {
		case i12*i13 > 0:
			return []Node{chain(s2, s1, s3)}
		case i12*i23 > 0:
			return []Node{chain(s1, s2, s3)}
		case i13*i23 > 0:
			return []Node{chain(s1, s3, s2)}
		}
		panic(ErrNoChain)
	}

	sets := [...]PlainSet{s1, s2, s3}
	for _, p := range [...]struct{ a, b, rest int }{{0, 1, 2}, {0, 2, 1}, {1, 2, 0}} {
		if n, ok := pair(sets[p.a], sets[p.b]); ok {
			return []Node{sets[p.rest], n}
		}
	}
	return []Node{s1, s2, s3}
}

// chain builds the diagram for a and c each overlapping middle, with no
// element common to all three. A side lying entirely inside middle is drawn
// inside it.
func chain(a, middle, c PlainSet) Node {
	left := a.Set.Elements.Intersect(middle.Set.Elements)
	right := middle.Set.Elements.Intersect(c.Set.Elements)
	leftInside := left.Len() == a.Set.Len()
	rightInside := right.Len() == c.Set.Len()

	switch {
	case leftInside && rightInside:
		return contain(AlignCenter, middle, a, c)
	case leftInside:
		return Intersection{
			Left:        contain(AlignLeading, middle, a),
			Right:       c,
			Gap:         gap(right),
			Description: describeIntersection(middle, c, right),
		}
	case rightInside:
		return Intersection{
			Left:        a,
			Right:       contain(AlignTrailing, middle, c),
			Gap:         gap(left),
			Description: describeIntersection(a, middle, left),
		}
	}
	return Intersection{
		Left:        a,
		Right:       intersect(middle, c, right),
		Gap:         gap(left),
		Description: describeIntersection(a, middle, left),
	}
}

func intersect(a, b PlainSet, common share.Set[float64]) Intersection {
	return Intersection{
		Left:        a,
		Right:       b,
		Gap:         gap(common),
		Description: describeIntersection(a, b, common),
	}
}

func contain(alignment Alignment, outer PlainSet, inner ...PlainSet) Containment {
	nodes := make([]Node, len(inner))
	for i, n := range inner {
		nodes[i] = n
	}
	return Containment{
		Inner:       nodes,
		Outer:       outer,
		Alignment:   alignment,
		Description: describeContainment(outer, inner),
	}
}

func threeway(top, left, right PlainSet, shared share.Set[float64]) Threeway {
	offset := func(p PlainSet) float64 {
		return float64(p.Set.Len()-shared.Len()) * OffsetScale
	}
	return Threeway{
		Top:   top,
		Left:  left,
		Right: right,
		Offset: ThreewayOffset{
			Top:   offset(top),
			Left:  offset(left),
			Right: offset(right),
		},
		Description: describeThreeway(top, left, right, shared),
	}
}

func gap(common share.Set[float64]) float64 {
	return float64(common.Len()) * GapScale
}
