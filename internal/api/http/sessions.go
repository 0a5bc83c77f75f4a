package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mushikui/mushikui-quiz/internal/exam"
	"github.com/mushikui/mushikui-quiz/internal/grading"
	"github.com/mushikui/mushikui-quiz/internal/markdown"
	"github.com/mushikui/mushikui-quiz/internal/session"
)

// CreateSessionHandler starts a session over one category.
// POST /api/sessions {"category_id": "..."}
func CreateSessionHandler(sessions session.Store, store *exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CategoryID string `json:"category_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		if _, err := store.Category(req.CategoryID); err != nil {
			if errors.Is(err, exam.ErrCategoryNotFound) {
				writeError(w, http.StatusNotFound, "category not found")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		s, err := sessions.Create(req.CategoryID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusCreated, s)
	}
}

// SaveAnswerHandler upserts one answer; a later write for the same
// (question, blank) replaces the earlier one.
// PUT /api/sessions/{sessionID}/answers
func SaveAnswerHandler(sessions session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ans exam.UserAnswer
		if err := json.NewDecoder(r.Body).Decode(&ans); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		if ans.QuestionID == "" {
			writeError(w, http.StatusBadRequest, "question_id required")
			return
		}
		s, err := sessions.SaveAnswer(chi.URLParam(r, "sessionID"), ans)
		if err != nil {
			respondSessionErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

type scoreResponse struct {
	Result exam.QuestionResult `json:"result"`
	// Text with blank markers replaced by numbered placeholders, for
	// result display.
	DisplayText string `json:"display_text,omitempty"`
}

// ScoreQuestionHandler grades one question against the session's saved
// answers and appends the result to the session.
// POST /api/sessions/{sessionID}/questions/{questionID}/score
func ScoreQuestionHandler(sessions session.Store, store *exam.Store, engine *grading.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Get(chi.URLParam(r, "sessionID"))
		if err != nil {
			respondSessionErr(w, err)
			return
		}
		q, err := store.Question(s.CategoryID, chi.URLParam(r, "questionID"))
		if err != nil {
			if errors.Is(err, exam.ErrQuestionNotFound) {
				writeError(w, http.StatusNotFound, "question not found")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		result := engine.Score(q, s.Answers)
		if _, err := sessions.AppendResult(s.ID, result); err != nil {
			respondSessionErr(w, err)
			return
		}
		resp := scoreResponse{Result: result}
		if q.Type == exam.TypeFillInTheBlank {
			resp.DisplayText = markdown.FormatPlaceholders(q.Text)
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// FinishSessionHandler aggregates the session's results into a summary and
// discards the session.
// POST /api/sessions/{sessionID}/finish
func FinishSessionHandler(sessions session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Get(chi.URLParam(r, "sessionID"))
		if err != nil {
			respondSessionErr(w, err)
			return
		}
		summary := grading.Aggregate(s.Results)
		if err := sessions.Delete(s.ID); err != nil {
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// RestartSessionHandler clears the session's answers and results.
// POST /api/sessions/{sessionID}/restart
func RestartSessionHandler(sessions session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Restart(chi.URLParam(r, "sessionID"))
		if err != nil {
			respondSessionErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

func respondSessionErr(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal server error")
}
