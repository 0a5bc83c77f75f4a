package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mushikui/mushikui-quiz/internal/exam"
)

// ListSubjectsHandler serves the catalog: id, name, description and category
// count per subject. No question or answer material leaves this endpoint.
func ListSubjectsHandler(store *exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Subjects())
	}
}

type subjectResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Categories  []exam.CategorySummary `json:"categories"`
}

// GetSubjectHandler serves one subject with category summaries (no
// questions, no answers).
func GetSubjectHandler(store *exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, err := store.Subject(chi.URLParam(r, "subjectID"))
		if err != nil {
			if errors.Is(err, exam.ErrSubjectNotFound) {
				writeError(w, http.StatusNotFound, "subject not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		resp := subjectResponse{
			ID:          sub.ID,
			Name:        sub.Name,
			Description: sub.Description,
			Categories:  make([]exam.CategorySummary, 0, len(sub.Categories)),
		}
		for _, c := range sub.Categories {
			resp.Categories = append(resp.Categories, c.Summary())
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
