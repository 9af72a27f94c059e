package domain

import (
	"strings"
)

// NormalizeText prepares word and syllable text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeSyllables normalizes every element of the submitted syllable list
// and drops entries that become empty. The surviving order is preserved;
// positions are assigned from the resulting slice indexes.
func NormalizeSyllables(syllables []string) []string {
	out := make([]string, 0, len(syllables))
	for _, s := range syllables {
		n := NormalizeText(s)
		if n == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}
