package venn

// Cue is the reaction a front end plays after a set is added to the canvas.
type Cue int

const (
	CueNone Cue = iota
	CueEmptySet
	CueSimpleSet
	CueOverlap
	CueComplex
	CueThreeway
)

func (c Cue) String() string {
	switch c {
	case CueEmptySet:
		return "empty set"
	case CueSimpleSet:
		return "simple set"
	case CueOverlap:
		return "overlap"
	case CueComplex:
		return "complex overlap"
	case CueThreeway:
		return "threeway"
	}
	return "none"
}

// CueFor picks the cue from the last node of a diagram, which is where a
// freshly added set or the composite it joined ends up.
func CueFor(nodes []Node) Cue {
	if len(nodes) == 0 {
		return CueNone
	}
	switch n := nodes[len(nodes)-1].(type) {
	case PlainSet:
		if n.Set.Len() == 0 {
			return CueEmptySet
		}
		return CueSimpleSet
	case Intersection:
		if Composite(n.Left) || Composite(n.Right) {
			return CueComplex
		}
		return CueOverlap
	case Containment:
		return CueOverlap
	case Threeway:
		return CueThreeway
	}
	return CueNone
}
