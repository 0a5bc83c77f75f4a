package exam

import "github.com/mushikui/mushikui-quiz/internal/markdown"

// QuestionType tags the closed set of question variants. The tag is fixed
// when the assembler creates a question and never changes afterwards.
type QuestionType string

const (
	TypeFillInTheBlank QuestionType = "fill-in-the-blank"
	TypeOX             QuestionType = "ox"
)

// Blank is one scorable gap inside a fill-in-the-blank question.
// Answer keeps the wire form: alternatives packed with "|". Alternatives is
// the split form the grader consumes; the assembler fills both. An empty
// Answer means the answer key had nothing for this slot, and the blank can
// never be scored as correct.
type Blank struct {
	ID           string   `json:"id"`
	Answer       string   `json:"answer"`
	Alternatives []string `json:"-"`
	Position     int      `json:"position"`
	Placeholder  string   `json:"placeholder,omitempty"`
}

type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Category string       `json:"category"`
	Text     string       `json:"text"`
	// AbsoluteNumber is the question's number in the source document,
	// kept after renumbering for answer-key cross-referencing.
	AbsoluteNumber int `json:"absolute_number,omitempty"`

	// fill-in-the-blank only
	Blanks []Blank         `json:"blanks,omitempty"`
	Parts  []markdown.Part `json:"parts,omitempty"`

	// ox only: "O" or "X"
	Answer string `json:"answer,omitempty"`

	// Optional choice labels. When every stored alternative of a blank is a
	// plain integer, the grader treats it as a 1-based index into this list.
	Options []string `json:"options,omitempty"`
}

type Category struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	NameEn        string     `json:"name_en"`
	Description   string     `json:"description"`
	Start         int        `json:"start"`
	End           int        `json:"end"`
	QuestionCount int        `json:"question_count"`
	Questions     []Question `json:"questions"`
}

// Subject owns its categories exclusively; category IDs are unique across
// the whole corpus.
type Subject struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Categories  []Category `json:"categories"`
}

// UserAnswer is one answer a user entered during a live session. For OX
// questions BlankID is empty. Saves are replace-not-append: a later write for
// the same (QuestionID, BlankID) supersedes the earlier one.
type UserAnswer struct {
	QuestionID string `json:"question_id"`
	BlankID    string `json:"blank_id,omitempty"`
	Answer     string `json:"answer"`
}

// QuestionResult is derived, recomputed fresh on every scoring call.
type QuestionResult struct {
	QuestionID     string   `json:"question_id"`
	IsCorrect      bool     `json:"is_correct"`
	CorrectAnswers []string `json:"correct_answers"`
	UserAnswers    []string `json:"user_answers"`
	Score          int      `json:"score"`
	MaxScore       int      `json:"max_score"`
}

// SubjectSummary is the catalog view: no categories, no questions.
type SubjectSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CategoryCount int    `json:"category_count"`
}

// CategorySummary is a category without its questions (and so without any
// answer material).
type CategorySummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameEn        string `json:"name_en"`
	Description   string `json:"description"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	QuestionCount int    `json:"question_count"`
}

func (c Category) Summary() CategorySummary {
	return CategorySummary{
		ID:            c.ID,
		Name:          c.Name,
		NameEn:        c.NameEn,
		Description:   c.Description,
		Start:         c.Start,
		End:           c.End,
		QuestionCount: c.QuestionCount,
	}
}
