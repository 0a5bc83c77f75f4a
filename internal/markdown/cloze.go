package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Blank markers are authored as bold spans whose content is underscores:
// **____**. A bold span containing a letter in any script is emphasized
// answer text, not a blank, and passes through untouched.

var (
	boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)
	// any letter: ASCII, hiragana, katakana, kanji
	scriptLetterRe  = regexp.MustCompile(`[a-zA-Z\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}]`)
	underscoreRunRe = regexp.MustCompile(`\*\*_+\*\*`)
)

// IsBlankMarker reports whether the inner content of a bold span is a blank
// placeholder: it contains an underscore and no letter of any script.
func IsBlankMarker(content string) bool {
	return strings.Contains(content, "_") && !scriptLetterRe.MatchString(content)
}

// BlankSpan is one blank marker found in question text. Start is the byte
// offset of the opening ** in the original text; it is used for ordering
// only, never for scoring.
type BlankSpan struct {
	Content string
	Start   int
	End     int
}

// ScanBlanks finds blank markers in text, in left-to-right order.
func ScanBlanks(text string) []BlankSpan {
	var spans []BlankSpan
	for _, loc := range boldRe.FindAllStringSubmatchIndex(text, -1) {
		content := text[loc[2]:loc[3]]
		if IsBlankMarker(content) {
			spans = append(spans, BlankSpan{Content: content, Start: loc[0], End: loc[1]})
		}
	}
	return spans
}

type PartType string

const (
	PartText  PartType = "text"
	PartInput PartType = "input"
)

// Part is one segment of question text split for rendering: either literal
// text or an input slot for the blank with the given index.
type Part struct {
	Type       PartType `json:"type"`
	Content    string   `json:"content"`
	BlankIndex int      `json:"blank_index"`
}

// SplitForInputs splits question text into ordered text/input parts. Blank
// indices count from 0 in scan order. Bold spans that are not blank markers
// stay inside the surrounding text parts with their ** delimiters intact;
// stripping emphasis is a presentation concern.
func SplitForInputs(text string) []Part {
	var parts []Part
	last := 0
	idx := 0
	for _, sp := range ScanBlanks(text) {
		if sp.Start > last {
			parts = append(parts, Part{Type: PartText, Content: text[last:sp.Start]})
		}
		parts = append(parts, Part{Type: PartInput, BlankIndex: idx})
		idx++
		last = sp.End
	}
	if last < len(text) {
		parts = append(parts, Part{Type: PartText, Content: text[last:]})
	}
	return parts
}

// FormatPlaceholders replaces underscore-run blank markers with numbered
// placeholders: "**____**" becomes "[1]", the next "[2]", and so on.
func FormatPlaceholders(text string) string {
	n := 0
	return underscoreRunRe.ReplaceAllStringFunc(text, func(string) string {
		n++
		return fmt.Sprintf("[%d]", n)
	})
}

// ExtractBoldSpans returns the trimmed contents of every bold span in text,
// in order. The answer-section parser reads answer alternatives this way.
func ExtractBoldSpans(text string) []string {
	var out []string
	for _, g := range boldRe.FindAllStringSubmatch(text, -1) {
		out = append(out, strings.TrimSpace(g[1]))
	}
	return out
}
