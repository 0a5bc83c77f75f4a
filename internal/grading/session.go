package grading

import (
	"math"

	"github.com/mushikui/mushikui-quiz/internal/exam"
)

// Summary is a whole session's score, derived from per-question results.
type Summary struct {
	TotalScore       int `json:"total_score"`
	TotalMaxScore    int `json:"total_max_score"`
	CorrectQuestions int `json:"correct_questions"`
	TotalQuestions   int `json:"total_questions"`
	Percentage       int `json:"percentage"`
}

// Aggregate sums per-question results. Order-independent: any permutation of
// results produces the same summary. Percentage is 0 when nothing was
// scorable.
func Aggregate(results []exam.QuestionResult) Summary {
	var s Summary
	s.TotalQuestions = len(results)
	for _, r := range results {
		s.TotalScore += r.Score
		s.TotalMaxScore += r.MaxScore
		if r.IsCorrect {
			s.CorrectQuestions++
		}
	}
	if s.TotalMaxScore > 0 {
		s.Percentage = int(math.Round(100 * float64(s.TotalScore) / float64(s.TotalMaxScore)))
	}
	return s
}
