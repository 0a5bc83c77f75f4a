package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// AnswerSectionMarker separates the problems section from the answer key.
// The split is on the first line containing this marker; everything before
// it is problems, everything from it on is answers.
const AnswerSectionMarker = "### 回答集"

// NotApplicableMarker in an answer line means the question's blanks have no
// correct answer on purpose; such blanks count toward maxScore but can never
// be satisfied.
const NotApplicableMarker = "該当なし"

var questionLineRe = regexp.MustCompile(`^(\d+)\.\s+(.+)`)

// SplitSections divides document lines at the answer-key marker. When the
// marker is absent the whole document is treated as problems.
func SplitSections(lines []string) (problems, answers []string) {
	for i, line := range lines {
		if strings.Contains(line, AnswerSectionMarker) {
			return lines[:i], lines[i:]
		}
	}
	return lines, nil
}

// RawQuestion is a problem-section entry before assembly: the question's
// number in the source document and its space-joined text.
type RawQuestion struct {
	Number int
	Text   string
}

// CategoryProblems holds one category's questions in document order.
type CategoryProblems struct {
	Name      string
	Questions []RawQuestion
}

// ParseProblems walks the problems section line by line. Category headings
// recognized by m open a new category; "N. text" lines open a new question;
// other non-blank lines continue the current question's text. Headings that
// name no configured category are ordinary text.
func ParseProblems(lines []string, m *CategoryMatcher) []CategoryProblems {
	var (
		out     []CategoryProblems
		current *CategoryProblems
		number  int
		text    strings.Builder
		open    bool
	)
	flush := func() {
		if current != nil && open && text.Len() > 0 {
			current.Questions = append(current.Questions, RawQuestion{Number: number, Text: strings.TrimSpace(text.String())})
		}
		text.Reset()
		open = false
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if name, _, ok := m.Match(trimmed); ok {
			flush()
			out = append(out, CategoryProblems{Name: name})
			current = &out[len(out)-1]
			continue
		}
		if current == nil {
			continue
		}
		if g := questionLineRe.FindStringSubmatch(trimmed); g != nil {
			flush()
			number, _ = strconv.Atoi(g[1])
			text.WriteString(g[2])
			open = true
		} else if open {
			text.WriteString(" ")
			text.WriteString(trimmed)
		}
	}
	flush()
	return out
}

// ParseAnswers walks the answer section with the same segmentation rules as
// ParseProblems. Each "N. text" line contributes the bold spans of its text
// as ordered answer alternatives for source question N; a line carrying the
// not-applicable marker yields zero answers. The result maps category name
// to source question number to answers, one entry per blank in declaration
// order.
func ParseAnswers(lines []string, m *CategoryMatcher) map[string]map[int][]string {
	out := map[string]map[int][]string{}
	var current string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if name, _, ok := m.Match(trimmed); ok {
			current = name
			if _, exists := out[current]; !exists {
				out[current] = map[int][]string{}
			}
			continue
		}
		if current == "" {
			continue
		}
		g := questionLineRe.FindStringSubmatch(trimmed)
		if g == nil {
			continue
		}
		num, _ := strconv.Atoi(g[1])
		if strings.Contains(g[2], NotApplicableMarker) {
			continue
		}
		if answers := ExtractBoldSpans(g[2]); len(answers) > 0 {
			out[current][num] = answers
		}
	}
	return out
}
