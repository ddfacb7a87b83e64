package text

import (
	"strings"
	"unicode"
)

// Normalize lowercases s, strips every rune that is not a letter, digit or
// whitespace, and collapses whitespace runs into single spaces. The result of
// normalizing an already-normalized string is the string itself.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes s and splits it into keywords. Blank input yields an
// empty slice. Token order follows the input; duplicates are kept.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}
