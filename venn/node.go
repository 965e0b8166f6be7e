package venn

import "fmt"

// Kind names the shape a Node is drawn as.
type Kind int

const (
	KindPlainSet Kind = iota
	KindIntersection
	KindContainment
	KindThreeway
)

func (k Kind) String() string {
	switch k {
	case KindPlainSet:
		return "set"
	case KindIntersection:
		return "intersection"
	case KindContainment:
		return "containment"
	case KindThreeway:
		return "threeway"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is one piece of a diagram. The set of implementations is closed:
// PlainSet, Intersection, Containment and Threeway.
type Node interface {
	Kind() Kind
	node()
}

// PlainSet is a single circle.
type PlainSet struct {
	Set UserSet
}

// Intersection draws Left and Right overlapping. Gap grows with the number
// of shared elements.
type Intersection struct {
	Left, Right Node
	Gap         float64
	Description string
}

// Alignment places the inner circles of a Containment inside the outer one.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeading
	AlignTrailing
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignLeading:
		return "leading"
	case AlignTrailing:
		return "trailing"
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// Containment draws one or two Inner nodes inside Outer.
type Containment struct {
	Inner       []Node
	Outer       Node
	Alignment   Alignment
	Description string
}

// ThreewayOffset pushes each circle of a Threeway away from the shared
// center, in proportion to the elements it does not share.
type ThreewayOffset struct {
	Top, Left, Right float64
}

// Threeway draws three sets that all share at least one element.
type Threeway struct {
	Top, Left, Right Node
	Offset           ThreewayOffset
	Description      string
}

func (PlainSet) Kind() Kind     { return KindPlainSet }
func (Intersection) Kind() Kind { return KindIntersection }
func (Containment) Kind() Kind  { return KindContainment }
func (Threeway) Kind() Kind     { return KindThreeway }

func (PlainSet) node()     {}
func (Intersection) node() {}
func (Containment) node()  {}
func (Threeway) node()     {}

// Size is the diameter hint for drawing the set.
func (p PlainSet) Size() float64 {
	if p.Set.Len() == 0 {
		return emptySize
	}
	return float64(p.Set.Len()) * elementSize
}

// Composite reports whether n combines more than one set.
func Composite(n Node) bool {
	_, plain := n.(PlainSet)
	return !plain
}

// Description returns the label of a composite node and the element list
// of a plain set.
func Description(n Node) string {
	switch n := n.(type) {
	case PlainSet:
		if n.Set.Len() == 0 {
			return fmt.Sprintf("%s = %s", n.Set.Name, EmptySymbol)
		}
		return fmt.Sprintf("%s = { %s }", n.Set.Name, n.Set.ParsedElements())
	case Intersection:
		return n.Description
	case Containment:
		return n.Description
	case Threeway:
		return n.Description
	}
	panic(fmt.Sprintf("venn: unknown node %T", n))
}
