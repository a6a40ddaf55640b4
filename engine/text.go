package engine

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes text for comparison: lowercase, every character
// that is not a letter, digit, or whitespace becomes a space, runs of
// whitespace collapse to one space, and the result is trimmed.
// Idempotent and total; every comparison in the engine goes through it.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
