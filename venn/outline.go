package venn

import (
	"fmt"
	"strings"
)

// Outline renders a diagram as indented text, one node per line. Children
// of a composite are indented by two spaces below its description.
func Outline(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		outline(&b, n, 0)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func outline(b *strings.Builder, n Node, depth int) {
	fmt.Fprintf(b, "%s%s\n", strings.Repeat("  ", depth), Description(n))
	for _, child := range Children(n) {
		outline(b, child, depth+1)
	}
}

// Children lists the nodes a composite is made of: the outer node before
// the inner ones, and the top of a Threeway before its sides.
func Children(n Node) []Node {
	switch n := n.(type) {
	case PlainSet:
		return nil
	case Intersection:
		return []Node{n.Left, n.Right}
	case Containment:
		return append([]Node{n.Outer}, n.Inner...)
	case Threeway:
		return []Node{n.Top, n.Left, n.Right}
	}
	panic(fmt.Sprintf("venn: unknown node %T", n))
}
