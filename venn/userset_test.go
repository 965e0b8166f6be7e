package venn

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"readySet/share"
)

func TestParseElements(t *testing.T) {
	tests := []struct {
		text string
		want []float64
	}{
		{"", []float64{}},
		{"2, 3, 5", []float64{2, 3, 5}},
		{"5,3,2,3", []float64{2, 3, 5}},
		{" 1.5 ,  -2 ", []float64{-2, 1.5}},
		{"1, two, 3,", []float64{1, 3}},
		{"NaN, Inf, -Inf, 4", []float64{4}},
	}
	for _, tt := range tests {
		got := share.Sorted(ParseElements(tt.text))
		if !cmp.Equal(got, tt.want) {
			t.Errorf("ParseElements(%q): -want +got\n%s", tt.text, cmp.Diff(tt.want, got))
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{-3, "-3"},
		{0, "0"},
		{2.5, "2.5"},
		{0.1, "0.1"},
		{1e6, "1000000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsedElements(t *testing.T) {
	if got, want := NewUserSet("A", "").ParsedElements(), "Ø"; got != want {
		t.Errorf("ParsedElements() of empty set = %q, want %q", got, want)
	}
	if got, want := NewUserSet("A", "", 11, 2, 7.25).ParsedElements(), "2, 7.25, 11"; got != want {
		t.Errorf("ParsedElements() = %q, want %q", got, want)
	}
}

func TestUserSetEqualIgnoresStyle(t *testing.T) {
	a := NewUserSet("A", "#5863F8", 1, 2)
	b := NewUserSet("B", "#3AD993", 2, 1, 1)

	if !a.Equal(b) {
		t.Errorf("%v.Equal(%v) = false, want true", a.Name, b.Name)
	}
	if a.Equal(NewUserSet("A", "#5863F8", 1)) {
		t.Errorf("sets with different elements compare equal")
	}
}
