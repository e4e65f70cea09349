package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/quiz"
)

// GET /results/{testID} — per-student summary plus chart buckets, owning
// teacher only.
func TestResultsHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := ownedTest(w, r, store, chi.URLParam(r, "testID"))
		if !ok {
			return
		}
		attempts, err := store.ListAttemptsByTest(r.Context(), t.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		res, err := quiz.BuildResults(&t, attempts)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
