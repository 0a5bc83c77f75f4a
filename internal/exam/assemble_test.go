package exam_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/mushikui/mushikui-quiz/internal/content"
	"github.com/mushikui/mushikui-quiz/internal/exam"
	"github.com/mushikui/mushikui-quiz/internal/grading"
	"github.com/mushikui/mushikui-quiz/internal/markdown"
)

func clozePack(categories ...content.CategoryConfig) content.SubjectPack {
	p := content.SubjectPack{
		Subject:    content.SubjectConfig{ID: "test-subject", Name: "テスト科目", Description: "説明"},
		Format:     content.FormatCloze,
		Categories: map[string]content.CategoryConfig{},
	}
	for _, c := range categories {
		p.Categories[c.Name] = c
		p.Order = append(p.Order, c.Name)
	}
	return p
}

func TestBuildSubjectEndToEnd(t *testing.T) {
	doc := strings.Join([]string{
		"## テスト分類",
		"",
		"1. ここに**____**を入れる。",
		"",
		"### 回答集",
		"",
		"## テスト分類",
		"",
		"1. **解答例**",
		"",
	}, "\n")
	pack := clozePack(content.CategoryConfig{
		ID: "test-cat", Name: "テスト分類", NameEn: "Test", Description: "d", Start: 1, End: 1,
	})

	sub := exam.BuildSubject(doc, pack)
	if len(sub.Categories) != 1 {
		t.Fatalf("got %d categories", len(sub.Categories))
	}
	c := sub.Categories[0]
	if len(c.Questions) != 1 {
		t.Fatalf("got %d questions", len(c.Questions))
	}
	q := c.Questions[0]
	if q.Type != exam.TypeFillInTheBlank || q.ID != "test-cat-1" {
		t.Errorf("question: %+v", q)
	}
	if len(q.Blanks) != 1 || q.Blanks[0].Answer != "解答例" {
		t.Fatalf("blanks: %+v", q.Blanks)
	}

	res := grading.NewEngine().Score(q, []exam.UserAnswer{
		{QuestionID: q.ID, BlankID: q.Blanks[0].ID, Answer: " 解答例 "},
	})
	if !res.IsCorrect || res.Score != 1 || res.MaxScore != 1 {
		t.Errorf("end-to-end scoring: %+v", res)
	}
}

// Questions are renumbered contiguously from the category's configured
// start; the source-document number survives in AbsoluteNumber.
func TestBuildSubjectRenumbering(t *testing.T) {
	doc := strings.Join([]string{
		"## テスト分類",
		"5. 問題**____**甲。",
		"9. 問題**____**乙。",
		"### 回答集",
		"## テスト分類",
		"5. **答甲**",
		"9. **答乙**",
	}, "\n")
	pack := clozePack(content.CategoryConfig{
		ID: "test-cat", Name: "テスト分類", Start: 21, End: 40,
	})

	c := exam.BuildSubject(doc, pack).Categories[0]
	if c.QuestionCount != 20 {
		t.Errorf("QuestionCount = %d, want end-start+1 = 20", c.QuestionCount)
	}
	wantIDs := []string{"test-cat-21", "test-cat-22"}
	wantAbs := []int{5, 9}
	for i, q := range c.Questions {
		if q.ID != wantIDs[i] || q.AbsoluteNumber != wantAbs[i] {
			t.Errorf("question %d: id=%s abs=%d, want id=%s abs=%d", i, q.ID, q.AbsoluteNumber, wantIDs[i], wantAbs[i])
		}
		if n := numberOf(t, q.ID); n < c.Start || n > c.End {
			t.Errorf("renumbered id %s outside [%d,%d]", q.ID, c.Start, c.End)
		}
		if q.Blanks[0].Answer == "" {
			t.Errorf("question %d: answer not resolved by source number", i)
		}
	}
}

func numberOf(t *testing.T, id string) int {
	t.Helper()
	n, err := strconv.Atoi(id[strings.LastIndex(id, "-")+1:])
	if err != nil {
		t.Fatalf("id %q has no numeric suffix: %v", id, err)
	}
	return n
}

// Answer alternatives found for one slot are packed with "|"; downstream
// splitting happens at the assembler, so the grader sees a list.
func TestBuildSubjectMultipleBlanks(t *testing.T) {
	doc := strings.Join([]string{
		"## テスト分類",
		"1. 甲は**____**、乙は**____**である。",
		"### 回答集",
		"## テスト分類",
		"1. **答一**、**答二**",
	}, "\n")
	pack := clozePack(content.CategoryConfig{ID: "test-cat", Name: "テスト分類", Start: 1, End: 1})

	q := exam.BuildSubject(doc, pack).Categories[0].Questions[0]
	if len(q.Blanks) != 2 {
		t.Fatalf("blanks: %+v", q.Blanks)
	}
	if q.Blanks[0].Answer != "答一" || q.Blanks[1].Answer != "答二" {
		t.Errorf("slot assignment: %+v", q.Blanks)
	}
	if q.Blanks[0].ID == q.Blanks[1].ID {
		t.Error("blank ids not unique within question")
	}
	if q.Blanks[0].Position >= q.Blanks[1].Position {
		t.Error("blank positions out of order")
	}

	inputs := 0
	for _, p := range q.Parts {
		if p.Type == markdown.PartInput {
			inputs++
		}
	}
	if inputs != 2 {
		t.Errorf("parts contain %d inputs, want 2", inputs)
	}
}

func TestBuildSubjectUnresolvedBlankStaysEmpty(t *testing.T) {
	doc := strings.Join([]string{
		"## テスト分類",
		"1. 空欄**____**のまま。",
		"### 回答集",
		"## テスト分類",
		"1. 該当なし",
	}, "\n")
	pack := clozePack(content.CategoryConfig{ID: "test-cat", Name: "テスト分類", Start: 1, End: 1})

	q := exam.BuildSubject(doc, pack).Categories[0].Questions[0]
	if q.Blanks[0].Answer != "" {
		t.Errorf("not-applicable answer resolved to %q", q.Blanks[0].Answer)
	}
}

func TestBuildBlockSubject(t *testing.T) {
	doc := strings.Join([]string{
		"## OX分類",
		"TYPE: ox",
		"#### 問1",
		"一問目。",
		"ANSWER: T",
		"---",
		"TYPE: ox",
		"#### 問2",
		"二問目。",
		"ANSWER: F",
		"---",
		"TYPE: ox",
		"#### 問3",
		"三問目。",
		"ANSWER: T",
	}, "\n")
	pack := content.SubjectPack{
		Subject: content.SubjectConfig{ID: "ox-subject", Name: "OX", Description: "d"},
		Format:  content.FormatBlocks,
		Categories: map[string]content.CategoryConfig{
			"OX分類": {ID: "ox-cat", Name: "OX分類", Start: 1, End: 2},
		},
		Order: []string{"OX分類"},
	}

	c := exam.BuildSubject(doc, pack).Categories[0]
	// blocks past the configured range are filtered out
	if len(c.Questions) != 2 || c.QuestionCount != 2 {
		t.Fatalf("got %d questions (count %d), want 2", len(c.Questions), c.QuestionCount)
	}
	q := c.Questions[0]
	if q.Type != exam.TypeOX || q.ID != "ox-cat-1" || q.Answer != "O" {
		t.Errorf("question 1: %+v", q)
	}
	if c.Questions[1].Answer != "X" {
		t.Errorf("question 2 answer: %q (T/F must map to O/X)", c.Questions[1].Answer)
	}
}
