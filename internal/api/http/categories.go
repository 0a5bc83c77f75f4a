package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mushikui/mushikui-quiz/internal/exam"
)

// GetCategoryHandler serves one category with its full question list. An
// unknown id is 404; a category that parsed to zero questions is the one
// load condition surfaced as a server error, since it means the content or
// the category table is wrong.
func GetCategoryHandler(store *exam.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := store.Category(chi.URLParam(r, "categoryID"))
		if err != nil {
			switch {
			case errors.Is(err, exam.ErrCategoryNotFound):
				writeError(w, http.StatusNotFound, "category not found")
			case errors.Is(err, exam.ErrEmptyCategory):
				writeError(w, http.StatusInternalServerError, exam.ErrEmptyCategory.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}
