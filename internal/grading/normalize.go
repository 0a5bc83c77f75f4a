package grading

import (
	"strings"
	"unicode"
)

// strippedBrackets are removed entirely before comparison: ASCII and
// full-width parentheses plus Japanese corner brackets.
const strippedBrackets = "「」()（）"

// Normalize canonicalizes an answer string for comparison: lower-cases,
// removes every whitespace rune (runs are deleted, not compacted to one
// space) and strips bracket characters. It must be applied to the stored
// answer and the user's input alike; one-sided normalization is a
// correctness bug. Idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || strings.ContainsRune(strippedBrackets, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
