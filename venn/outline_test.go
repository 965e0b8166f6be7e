package venn

import "testing"

func TestOutline(t *testing.T) {
	tests := []struct {
		name string
		in   []PlainSet
		want string
	}{{
		name: "empty canvas",
		want: "",
	}, {
		name: "empty set",
		in:   []PlainSet{set("A")},
		want: "A = Ø",
	}, {
		name: "unrelated sets",
		in:   []PlainSet{set("A", 1), set("B", 2.5)},
		want: "A = { 1 }\nB = { 2.5 }",
	}, {
		name: "nested chain",
		in:   []PlainSet{set("A", 1, 2, 3, 4), set("B", 1, 2), set("C", 4, 5)},
		want: "A ∩ C = { 4 }\n" +
			"  A ⊂ B\n" +
			"    A = { 1, 2, 3, 4 }\n" +
			"    B = { 1, 2 }\n" +
			"  C = { 4, 5 }",
	}, {
		name: "threeway",
		in:   []PlainSet{set("A", 2, 3, 5), set("B", 3, 5, 7), set("C", 5, 7, 11)},
		want: "B ∩ A ∩ C = { 5 }\n" +
			"  A = { 2, 3, 5 }\n" +
			"  B = { 3, 5, 7 }\n" +
			"  C = { 5, 7, 11 }",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outline(Classify(sets(tt.in...))); got != tt.want {
				t.Errorf("Outline() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		in   []PlainSet
		want Cue
	}{
		{"nothing", nil, CueNone},
		{"empty set", []PlainSet{set("A", 1), set("B")}, CueEmptySet},
		{"simple set", []PlainSet{set("A", 1)}, CueSimpleSet},
		{"intersection", []PlainSet{set("A", 1, 2), set("B", 2, 3)}, CueOverlap},
		{"containment", []PlainSet{set("A", 1, 2), set("B", 2)}, CueOverlap},
		{"pair joined by a third set", []PlainSet{set("A", 1, 2), set("B", 9), set("C", 2, 3)}, CueOverlap},
		{"chain", []PlainSet{set("A", 1, 2), set("B", 2, 3), set("C", 3, 4)}, CueComplex},
		{"contained chain", []PlainSet{set("A", 1, 2, 3, 4), set("B", 1, 2), set("C", 4, 5)}, CueComplex},
		{"double containment", []PlainSet{set("A", 1, 2, 3, 4), set("B", 1, 2), set("C", 4)}, CueOverlap},
		{"threeway", []PlainSet{set("A", 1, 2), set("B", 1, 3), set("C", 1, 4)}, CueThreeway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CueFor(Classify(sets(tt.in...))); got != tt.want {
				t.Errorf("CueFor() = %v, want %v", got, tt.want)
			}
		})
	}
}
