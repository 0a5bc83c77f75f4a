package grading

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mushikui/mushikui-quiz/internal/exam"
)

// Strategy scores one question variant. answers has already been filtered to
// the question's id.
type Strategy interface {
	Score(q exam.Question, answers []exam.UserAnswer) exam.QuestionResult
}

// Engine routes a question to the strategy for its type tag. Scoring is a
// pure function of its inputs: no state, safe to call concurrently, same
// result every time.
type Engine struct {
	strategies map[exam.QuestionType]Strategy
}

func NewEngine() *Engine {
	return &Engine{strategies: map[exam.QuestionType]Strategy{
		exam.TypeFillInTheBlank: fillInTheBlankStrategy{},
		exam.TypeOX:             oxStrategy{},
	}}
}

// Score grades one question against the user's answers. Answers for other
// questions are filtered out first. A question whose type tag matches no
// strategy yields a zero-score result; scoring never fails for a
// structurally valid question.
func (e *Engine) Score(q exam.Question, userAnswers []exam.UserAnswer) exam.QuestionResult {
	var mine []exam.UserAnswer
	for _, a := range userAnswers {
		if a.QuestionID == q.ID {
			mine = append(mine, a)
		}
	}
	s, ok := e.strategies[q.Type]
	if !ok {
		return exam.QuestionResult{
			QuestionID:     q.ID,
			CorrectAnswers: []string{},
			UserAnswers:    []string{},
			MaxScore:       1,
		}
	}
	return s.Score(q, mine)
}

var integerRe = regexp.MustCompile(`^\d+$`)

type fillInTheBlankStrategy struct{}

func (fillInTheBlankStrategy) Score(q exam.Question, answers []exam.UserAnswer) exam.QuestionResult {
	res := exam.QuestionResult{
		QuestionID:     q.ID,
		CorrectAnswers: make([]string, 0, len(q.Blanks)),
		UserAnswers:    make([]string, 0, len(q.Blanks)),
		MaxScore:       len(q.Blanks),
	}
	for _, blank := range q.Blanks {
		user, answered := answerForBlank(answers, blank.ID)
		res.CorrectAnswers = append(res.CorrectAnswers, blank.Answer)
		res.UserAnswers = append(res.UserAnswers, user)
		if blankCorrect(blank, q.Options, user, answered) {
			res.Score++
		}
	}
	// The score must be positive: a question with nothing resolved or
	// nothing answered is never vacuously correct.
	res.IsCorrect = res.Score == res.MaxScore && res.Score > 0
	return res
}

// blankCorrect decides one blank. The user's normalized input must match one
// of the blank's normalized alternatives. When every alternative is a plain
// integer the blank is index-keyed: if the input matches one of the
// question's option labels, its 1-based position substitutes for the input
// before the comparison.
func blankCorrect(blank exam.Blank, options []string, user string, answered bool) bool {
	if blank.Answer == "" || !answered {
		return false
	}
	alternatives := blank.Alternatives
	if len(alternatives) == 0 {
		alternatives = []string{blank.Answer}
	}
	normalizedUser := Normalize(user)
	if allIntegers(alternatives) && len(options) > 0 {
		for i, opt := range options {
			if Normalize(opt) == normalizedUser {
				normalizedUser = strconv.Itoa(i + 1)
				break
			}
		}
	}
	for _, alt := range alternatives {
		if Normalize(alt) == normalizedUser {
			return true
		}
	}
	return false
}

func allIntegers(alternatives []string) bool {
	for _, a := range alternatives {
		if !integerRe.MatchString(a) {
			return false
		}
	}
	return true
}

// answerForBlank finds the user's answer for a blank. Upstream saves are
// replace-not-append, so at most one entry exists per blank id; the first
// match wins regardless.
func answerForBlank(answers []exam.UserAnswer, blankID string) (string, bool) {
	for _, a := range answers {
		if a.BlankID == blankID {
			return a.Answer, true
		}
	}
	return "", false
}

type oxStrategy struct{}

func (oxStrategy) Score(q exam.Question, answers []exam.UserAnswer) exam.QuestionResult {
	user := ""
	if len(answers) > 0 {
		user = answers[0].Answer
	}
	// T/F aliases fold onto O/X on both sides before comparing.
	user = foldOX(user)
	correct := foldOX(q.Answer)
	isCorrect := user != "" && user == correct
	score := 0
	if isCorrect {
		score = 1
	}
	return exam.QuestionResult{
		QuestionID:     q.ID,
		IsCorrect:      isCorrect,
		CorrectAnswers: []string{correct},
		UserAnswers:    []string{user},
		Score:          score,
		MaxScore:       1,
	}
}

func foldOX(s string) string {
	switch up := strings.ToUpper(strings.TrimSpace(s)); up {
	case "T":
		return "O"
	case "F":
		return "X"
	default:
		return up
	}
}
