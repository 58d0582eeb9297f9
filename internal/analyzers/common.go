package analyzers

import (
	"strings"
	"unicode"
)

// letters lowercases text and strips everything but a-z, preserving order
func letters(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// cleanWords lowercases text and splits it into alphabetic words
func cleanWords(text string) []string {
	lower := strings.ToLower(text)
	raw := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// inClass reports whether byte c belongs to the character class set
func inClass(c byte, class string) bool {
	return strings.IndexByte(class, c) >= 0
}

func isVowel(c byte) bool {
	return inClass(c, "aeiou")
}

func isConsonant(c byte) bool {
	return c >= 'a' && c <= 'z' && !isVowel(c)
}

// clamp100 clamps v to the canonical score range [0, 100]
func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// clamp01 clamps v to the canonical ratio range [0, 1]
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// maxInt floors a denominator at lo to guard divisions
func maxInt(v, lo int) int {
	if v < lo {
		return lo
	}
	return v
}
