package venn

import (
	"math"
	"strconv"
	"strings"

	"readySet/share"
)

// EmptySymbol stands in for the elements of a set that has none.
const EmptySymbol = "Ø"

// UserSet is a set of numbers as entered by the user, together with the
// style it is drawn with. Name and Color never take part in comparisons.
type UserSet struct {
	Name     string
	Color    string
	Elements share.Set[float64]
}

func NewUserSet(name, color string, elements ...float64) UserSet {
	return UserSet{Name: name, Color: color, Elements: share.NewSet(elements...)}
}

func (u UserSet) Len() int {
	return u.Elements.Len()
}

// Equal reports whether both sets hold the same elements.
func (u UserSet) Equal(o UserSet) bool {
	return u.Elements.Equal(o.Elements)
}

func (u UserSet) Sorted() []float64 {
	return share.Sorted(u.Elements)
}

// ParsedElements renders the elements in ascending order, or EmptySymbol.
func (u UserSet) ParsedElements() string {
	if u.Len() == 0 {
		return EmptySymbol
	}
	return formatElements(u.Elements)
}

// ParseElements reads a comma separated list of numbers. Fields that are
// not finite numbers are skipped, and duplicates collapse.
func ParseElements(text string) share.Set[float64] {
	var elements share.Set[float64]
	for _, field := range strings.Split(text, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		elements.Add(v)
	}
	return elements
}

// FormatNumber prints integral values without a decimal point and every
// other value in its shortest decimal form.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatElements(elements share.Set[float64]) string {
	sorted := share.Sorted(elements)
	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, ", ")
}
