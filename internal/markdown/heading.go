package markdown

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// Both grammars (cloze and block) must agree on where a category starts, so
// heading recognition lives here and nowhere else.

var (
	headingRe = regexp.MustCompile(`^(#{1,3})\s+(.+?)\s*$`)
	// trailing parenthetical annotation on a heading, e.g. "第1章 ... (Intro)"
	trailingParenRe = regexp.MustCompile(`\s+[(（].*[)）]$`)
)

// CategoryMatcher recognizes headings whose text names a configured category.
// Comparison folds full-width/half-width variants and collapses whitespace,
// so "第1章　概論" and "第1章 概論" select the same category.
type CategoryMatcher struct {
	byKey map[string]string // folded heading text -> canonical category name
}

func NewCategoryMatcher(names []string) *CategoryMatcher {
	m := &CategoryMatcher{byKey: make(map[string]string, len(names))}
	for _, n := range names {
		m.byKey[foldKey(n)] = n
	}
	return m
}

// Match reports whether line is a heading for a known category. It returns
// the canonical (configured) category name and the heading level. Headings
// that name no configured category are not matches; callers treat such lines
// as ordinary text.
func (m *CategoryMatcher) Match(line string) (name string, level int, ok bool) {
	heading, level, isHeading := SplitHeading(line)
	if !isHeading {
		return "", 0, false
	}
	name, ok = m.byKey[foldKey(heading)]
	return name, level, ok
}

// SplitHeading parses a markdown heading line of level 1..3, with any
// trailing parenthetical annotation stripped from the text.
func SplitHeading(line string) (text string, level int, ok bool) {
	g := headingRe.FindStringSubmatch(strings.TrimSpace(line))
	if g == nil {
		return "", 0, false
	}
	text = trailingParenRe.ReplaceAllString(g[2], "")
	return strings.TrimSpace(text), len(g[1]), true
}

func foldKey(s string) string {
	return strings.Join(strings.Fields(width.Fold.String(s)), " ")
}
