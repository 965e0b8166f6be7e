package venn

import (
	"fmt"
	"strings"

	"readySet/share"
)

func describeIntersection(lhs, rhs PlainSet, common share.Set[float64]) string {
	return fmt.Sprintf("%s ∩ %s = { %s }",
		lhs.Set.Name, rhs.Set.Name, formatElements(common))
}

// describeContainment writes the outer set first, one clause per inner set.
func describeContainment(outer PlainSet, inner []PlainSet) string {
	clauses := make([]string, len(inner))
	for i, n := range inner {
		clauses[i] = fmt.Sprintf("%s ⊂ %s", outer.Set.Name, n.Set.Name)
	}
	return strings.Join(clauses, " and ")
}

// describeThreeway leads with the left set, then top, then right.
func describeThreeway(top, lhs, rhs PlainSet, common share.Set[float64]) string {
	return fmt.Sprintf("%s ∩ %s ∩ %s = { %s }",
		lhs.Set.Name, top.Set.Name, rhs.Set.Name, formatElements(common))
}
