package markdown

import (
	"regexp"
	"strings"
)

// Block-quiz grammar: a category heading, then question blocks separated by
// horizontal rules. Each block carries a TYPE field, free question text, an
// optional OPTIONS list and an ANSWER field.

// BlockType is the authored TYPE of one block.
type BlockType string

const (
	BlockOX      BlockType = "ox"
	BlockChoice  BlockType = "choice"
	BlockUnknown BlockType = ""
)

// Block is one parsed question block, before range filtering and assembly.
type Block struct {
	Type    BlockType
	Body    string
	Answer  string
	Options []string
}

var (
	ruleRe      = regexp.MustCompile(`^-{3,}\s*$`)
	fieldRe     = regexp.MustCompile(`(?i)^\**\s*(TYPE|OPTIONS|ANSWER)\s*\**\s*[:：]\s*(.*)$`)
	listItemRe  = regexp.MustCompile(`^(?:[-*+]|\d+\.)\s+(.+)$`)
	anyHeadRe   = regexp.MustCompile(`^#{1,6}\s+`)
)

// CategorySpan returns the lines belonging to the named category: from just
// after its heading to just before the next heading of equal-or-shallower
// level. ok is false when the document has no heading for the category.
func CategorySpan(lines []string, m *CategoryMatcher, category string) (span []string, ok bool) {
	start, level := -1, 0
	for i, line := range lines {
		name, lv, matched := m.Match(line)
		if start == -1 {
			if matched && name == category {
				start, level = i+1, lv
			}
			continue
		}
		if _, lv2, isHeading := SplitHeading(line); isHeading && lv2 <= level {
			return lines[start:i], true
		}
	}
	if start == -1 {
		return nil, false
	}
	return lines[start:], true
}

// SplitBlocks divides a category span on horizontal-rule lines, dropping
// empty blocks.
func SplitBlocks(span []string) [][]string {
	var blocks [][]string
	var cur []string
	flush := func() {
		for _, l := range cur {
			if strings.TrimSpace(l) != "" {
				blocks = append(blocks, cur)
				break
			}
		}
		cur = nil
	}
	for _, line := range span {
		if ruleRe.MatchString(strings.TrimSpace(line)) {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}

// ParseBlock reads one question block. The body is the text between the
// first heading inside the block and the OPTIONS/ANSWER markers; a block
// without an inner heading uses everything that is not a field marker or an
// option item. A block whose TYPE is missing or unrecognized comes back with
// BlockUnknown and is dropped by the assembler.
func ParseBlock(lines []string) Block {
	var b Block
	var body []string
	inOptions := false
	sawHeading := false
	stopBody := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if g := fieldRe.FindStringSubmatch(line); g != nil {
			inOptions = false
			stopBody = true
			switch strings.ToUpper(g[1]) {
			case "TYPE":
				b.Type = blockTypeOf(g[2])
			case "ANSWER":
				b.Answer = strings.TrimSpace(g[2])
			case "OPTIONS":
				inOptions = true
				if v := strings.TrimSpace(g[2]); v != "" {
					b.Options = append(b.Options, v)
				}
			}
			continue
		}
		if inOptions {
			if g := listItemRe.FindStringSubmatch(line); g != nil {
				b.Options = append(b.Options, strings.TrimSpace(g[1]))
				continue
			}
			inOptions = false
		}
		if anyHeadRe.MatchString(line) {
			if !sawHeading {
				sawHeading = true
				body = nil
				stopBody = false
			}
			continue
		}
		if !stopBody || !sawHeading {
			body = append(body, line)
		}
	}
	b.Body = strings.TrimSpace(strings.Join(body, " "))
	return b
}

// ParseCategoryBlocks parses every block in the named category's span, in
// document order. Blocks with an unrecognized TYPE are dropped, not errors.
func ParseCategoryBlocks(lines []string, m *CategoryMatcher, category string) []Block {
	span, ok := CategorySpan(lines, m, category)
	if !ok {
		return nil
	}
	var out []Block
	for _, blockLines := range SplitBlocks(span) {
		b := ParseBlock(blockLines)
		if b.Type == BlockUnknown {
			continue
		}
		out = append(out, b)
	}
	return out
}

func blockTypeOf(v string) BlockType {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "ox", "o/x", "tf", "truefalse", "true_false", "true/false":
		return BlockOX
	case "choice", "mcq", "multiple-choice", "multiple_choice":
		return BlockChoice
	default:
		return BlockUnknown
	}
}

// MapTrueFalse folds the T/F aliases onto the canonical O/X symbols after
// upper-casing. Values other than T/F pass through upper-cased.
func MapTrueFalse(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T", "O":
		return "O"
	case "F", "X":
		return "X"
	default:
		return strings.ToUpper(strings.TrimSpace(s))
	}
}
