package domain

import (
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  conversation  ", want: "conversation"},
		{name: "lowercase", input: "Beautiful", want: "beautiful"},
		{name: "compress multiple spaces", input: "ice   cream", want: "ice cream"},
		{name: "diacritics preserved", input: "Café", want: "café"},
		{name: "hyphens preserved", input: "well-known", want: "well-known"},
		{name: "apostrophes preserved", input: "don't", want: "don't"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and spaces", input: "\t word \t", want: "word"},
		{name: "mixed", input: "  Ice   Cream  ", want: "ice cream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSyllables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "basic", input: []string{"con", "ver", "sa", "tion"}, want: []string{"con", "ver", "sa", "tion"}},
		{name: "case folded", input: []string{"Con", "VER"}, want: []string{"con", "ver"}},
		{name: "empty entries dropped", input: []string{"beau", "", "  ", "ti", "ful"}, want: []string{"beau", "ti", "ful"}},
		{name: "all empty", input: []string{"", "  "}, want: []string{}},
		{name: "duplicate syllables kept", input: []string{"na", "na"}, want: []string{"na", "na"}},
		{name: "nil", input: nil, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeSyllables(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeSyllables(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
