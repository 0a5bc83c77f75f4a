package markdown_test

import (
	"strings"
	"testing"

	"github.com/mushikui/mushikui-quiz/internal/markdown"
)

const clozeDoc = `# 問題集について

## 第1章 基礎 (Basics)

1. 最初の問題は**____**である。
続きの行です。

2. 二番目の問題。

### 未登録の見出し

## 第2章 応用

10. 応用問題**____**。

### 回答集

## 第1章 基礎

1. **答え**、**別解|第二**
2. 該当なし

## 第2章 応用

10. **応用答**
`

func matcher() *markdown.CategoryMatcher {
	return markdown.NewCategoryMatcher([]string{"第1章 基礎", "第2章 応用"})
}

func TestSplitSections(t *testing.T) {
	lines := strings.Split(clozeDoc, "\n")
	problems, answers := markdown.SplitSections(lines)
	if len(answers) == 0 {
		t.Fatal("answer section not found")
	}
	if !strings.Contains(answers[0], markdown.AnswerSectionMarker) {
		t.Errorf("answer section starts at %q", answers[0])
	}
	for _, l := range problems {
		if strings.Contains(l, markdown.AnswerSectionMarker) {
			t.Error("marker leaked into problems section")
		}
	}
}

func TestSplitSectionsNoMarker(t *testing.T) {
	lines := []string{"## 第1章 基礎", "1. 問題"}
	problems, answers := markdown.SplitSections(lines)
	if len(problems) != 2 || answers != nil {
		t.Errorf("got problems=%d answers=%v", len(problems), answers)
	}
}

func TestParseProblems(t *testing.T) {
	lines, _ := markdown.SplitSections(strings.Split(clozeDoc, "\n"))
	cats := markdown.ParseProblems(lines, matcher())
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
	if cats[0].Name != "第1章 基礎" || cats[1].Name != "第2章 応用" {
		t.Errorf("category order: %q, %q", cats[0].Name, cats[1].Name)
	}

	qs := cats[0].Questions
	if len(qs) != 2 {
		t.Fatalf("category 1: got %d questions, want 2", len(qs))
	}
	if qs[0].Number != 1 {
		t.Errorf("question number = %d, want 1", qs[0].Number)
	}
	if want := "最初の問題は**____**である。 続きの行です。"; qs[0].Text != want {
		t.Errorf("continuation join: got %q, want %q", qs[0].Text, want)
	}

	if n := len(cats[1].Questions); n != 1 {
		t.Fatalf("category 2: got %d questions, want 1", n)
	}
	if cats[1].Questions[0].Number != 10 {
		t.Errorf("source number = %d, want 10", cats[1].Questions[0].Number)
	}
}

// The heading text is matched with a trailing parenthetical stripped, and
// headings naming no configured category are ordinary text.
func TestParseProblemsUnknownHeadingIgnored(t *testing.T) {
	lines := []string{
		"## 第1章 基礎",
		"1. 問題文",
		"### 未登録の見出し",
		"まだ問題一の続き",
	}
	cats := markdown.ParseProblems(lines, matcher())
	if len(cats) != 1 {
		t.Fatalf("got %d categories, want 1", len(cats))
	}
	got := cats[0].Questions[0].Text
	if want := "問題文 ### 未登録の見出し まだ問題一の続き"; got != want {
		t.Errorf("unknown heading handling: got %q, want %q", got, want)
	}
}

func TestParseAnswers(t *testing.T) {
	_, lines := markdown.SplitSections(strings.Split(clozeDoc, "\n"))
	answers := markdown.ParseAnswers(lines, matcher())

	a1 := answers["第1章 基礎"]
	if got := a1[1]; len(got) != 2 || got[0] != "答え" || got[1] != "別解|第二" {
		t.Errorf("question 1 answers = %v", got)
	}
	if _, ok := a1[2]; ok {
		t.Error("not-applicable line produced answers")
	}
	if got := answers["第2章 応用"][10]; len(got) != 1 || got[0] != "応用答" {
		t.Errorf("question 10 answers = %v", got)
	}
}

// Full-width digits and ideographic spaces in a heading fold to the same
// category key as the configured half-width name.
func TestCategoryMatcherWidthFold(t *testing.T) {
	name, _, ok := matcher().Match("## 第１章　基礎")
	if !ok || name != "第1章 基礎" {
		t.Errorf("width-folded heading: ok=%v name=%q", ok, name)
	}
}

func TestCategoryMatcherLevels(t *testing.T) {
	m := matcher()
	if _, _, ok := m.Match("### 第1章 基礎"); !ok {
		t.Error("level-3 heading rejected")
	}
	if _, _, ok := m.Match("#### 第1章 基礎"); ok {
		t.Error("level-4 heading accepted")
	}
	if _, _, ok := m.Match("第1章 基礎"); ok {
		t.Error("non-heading line accepted")
	}
}
