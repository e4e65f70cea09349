package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/rbac"
)

// POST /tests/{code}/attempts  { answers[], selectedOptions[], score }
//
// The client may send the score it computed for immediate feedback, but the
// recorded score is always recomputed here from the stored answer keys.
func SubmitAttemptHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		var req struct {
			Answers  []string `json:"answers"`
			Selected []*int   `json:"selectedOptions"`
			Score    float64  `json:"score"` // advisory only
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		studentID := auth.SubjectFromContext(r.Context())
		if studentID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, t, err := store.SubmitAttempt(r.Context(), code, studentID, req.Answers, req.Selected)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"score":      a.Score,
			"totalMarks": t.TotalMarks(),
		})
	}
}

// GET /students/{studentID}/attempts
//
// Students can only list their own attempts; a caller with attempt:view-all
// may list anyone's.
func ListStudentAttemptsHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := chi.URLParam(r, "studentID")
		sub := auth.SubjectFromContext(r.Context())
		role := rbac.RoleFromContext(r.Context())
		if role != "teacher" && role != "admin" {
			studentID = sub
		}
		list, err := store.ListAttemptsByStudent(r.Context(), studentID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /attempts?test_id=... — raw attempt list, owning teacher only.
func ListTestAttemptsHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testID := strings.TrimSpace(r.URL.Query().Get("test_id"))
		if testID == "" {
			http.Error(w, "test_id required", http.StatusBadRequest)
			return
		}
		t, ok := ownedTest(w, r, store, testID)
		if !ok {
			return
		}
		list, err := store.ListAttemptsByTest(r.Context(), t.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// ownedTest loads a test and enforces that the caller owns it (admins
// pass). Writes the response itself on failure.
func ownedTest(w http.ResponseWriter, r *http.Request, store quiz.Store, testID string) (quiz.Test, bool) {
	t, err := store.GetTest(r.Context(), testID)
	if err != nil {
		writeError(w, err)
		return quiz.Test{}, false
	}
	sub := auth.SubjectFromContext(r.Context())
	if t.TeacherID != sub && rbac.RoleFromContext(r.Context()) != "admin" {
		http.Error(w, "forbidden", http.StatusForbidden)
		return quiz.Test{}, false
	}
	return t, true
}
