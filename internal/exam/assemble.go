package exam

import (
	"fmt"
	"strings"

	"github.com/mushikui/mushikui-quiz/internal/content"
	"github.com/mushikui/mushikui-quiz/internal/markdown"
)

// BuildSubject turns one subject's markdown document into its typed tree,
// using the subject's configured category table. Headings that name no
// configured category are treated as prose by the parsers, so explanatory
// headings in the source are harmless.
func BuildSubject(doc string, pack content.SubjectPack) Subject {
	lines := strings.Split(doc, "\n")
	var categories []Category
	if pack.Format == content.FormatBlocks {
		categories = buildBlockCategories(lines, pack)
	} else {
		categories = buildClozeCategories(lines, pack)
	}
	return Subject{
		ID:          pack.Subject.ID,
		Name:        strings.TrimSpace(pack.Subject.Name),
		Description: strings.TrimSpace(pack.Subject.Description),
		Categories:  categories,
	}
}

// buildClozeCategories merges the problems and answer sections per category
// and source question number, then renumbers questions contiguously from the
// category's configured start. The source number survives in AbsoluteNumber.
func buildClozeCategories(lines []string, pack content.SubjectPack) []Category {
	matcher := markdown.NewCategoryMatcher(pack.CategoryNames())
	problemLines, answerLines := markdown.SplitSections(lines)
	problems := markdown.ParseProblems(problemLines, matcher)
	answers := markdown.ParseAnswers(answerLines, matcher)

	var categories []Category
	for _, cp := range problems {
		cfg, ok := pack.Categories[cp.Name]
		if !ok {
			continue
		}
		questions := make([]Question, 0, len(cp.Questions))
		for i, raw := range cp.Questions {
			q := Question{
				ID:             fmt.Sprintf("%s-%d", cfg.ID, cfg.Start+i),
				Type:           TypeFillInTheBlank,
				Category:       cfg.ID,
				Text:           raw.Text,
				AbsoluteNumber: raw.Number,
				Blanks:         buildBlanks(raw.Text, answers[cp.Name][raw.Number]),
				Parts:          markdown.SplitForInputs(raw.Text),
			}
			questions = append(questions, q)
		}
		categories = append(categories, Category{
			ID:            cfg.ID,
			Name:          strings.TrimSpace(cfg.Name),
			NameEn:        strings.TrimSpace(cfg.NameEn),
			Description:   strings.TrimSpace(cfg.Description),
			Start:         cfg.Start,
			End:           cfg.End,
			QuestionCount: cfg.End - cfg.Start + 1,
			Questions:     questions,
		})
	}
	return categories
}

// buildBlanks pairs blank markers in question text with the answer-key
// entries for the question's source number, by position. Multiple
// alternatives for one slot stay packed with "|" on the wire and split in
// Alternatives. A slot the key does not cover keeps an empty answer.
func buildBlanks(text string, slotAnswers []string) []Blank {
	spans := markdown.ScanBlanks(text)
	blanks := make([]Blank, 0, len(spans))
	for i, sp := range spans {
		b := Blank{
			ID:          fmt.Sprintf("blank-%d", i),
			Position:    sp.Start,
			Placeholder: fmt.Sprintf("回答%d", i+1),
		}
		if i < len(slotAnswers) {
			b.Answer = slotAnswers[i]
			b.Alternatives = strings.Split(slotAnswers[i], "|")
		}
		blanks = append(blanks, b)
	}
	return blanks
}

// buildBlockCategories assembles block-quiz subjects. Blocks are numbered
// 1-based in document order per category, filtered to the configured
// [start, end] range, then re-identified from start.
func buildBlockCategories(lines []string, pack content.SubjectPack) []Category {
	matcher := markdown.NewCategoryMatcher(pack.CategoryNames())
	var categories []Category
	for _, name := range pack.CategoryNames() {
		cfg := pack.Categories[name]
		blocks := markdown.ParseCategoryBlocks(lines, matcher, name)

		var questions []Question
		for pos, b := range blocks {
			if pos+1 < cfg.Start || pos+1 > cfg.End {
				continue
			}
			number := cfg.Start + len(questions)
			if q, ok := blockQuestion(b, cfg.ID, number); ok {
				questions = append(questions, q)
			}
		}
		categories = append(categories, Category{
			ID:            cfg.ID,
			Name:          strings.TrimSpace(cfg.Name),
			NameEn:        strings.TrimSpace(cfg.NameEn),
			Description:   strings.TrimSpace(cfg.Description),
			Start:         cfg.Start,
			End:           cfg.End,
			QuestionCount: len(questions),
			Questions:     questions,
		})
	}
	return categories
}

func blockQuestion(b markdown.Block, categoryID string, number int) (Question, bool) {
	q := Question{
		ID:             fmt.Sprintf("%s-%d", categoryID, number),
		Category:       categoryID,
		Text:           b.Body,
		AbsoluteNumber: number,
	}
	switch b.Type {
	case markdown.BlockOX:
		q.Type = TypeOX
		q.Answer = markdown.MapTrueFalse(b.Answer)
	case markdown.BlockChoice:
		q.Type = TypeFillInTheBlank
		q.Options = b.Options
		q.Blanks = []Blank{{
			ID:           "blank-0",
			Answer:       b.Answer,
			Alternatives: strings.Split(b.Answer, "|"),
			Placeholder:  "回答1",
		}}
		q.Parts = markdown.SplitForInputs(b.Body)
	default:
		return Question{}, false
	}
	return q, true
}
