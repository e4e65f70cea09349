package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/rbac"
)

// POST /tests  { name, description, timeLimit, questions[], teacherID }
func CreateTestHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name        string          `json:"name"`
			Description string          `json:"description"`
			TimeLimit   int             `json:"timeLimit"`
			Questions   []quiz.Question `json:"questions"`
			TeacherID   string          `json:"teacherID"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		sub := auth.SubjectFromContext(r.Context())
		if req.TeacherID == "" {
			req.TeacherID = sub
		}
		// A teacher can only author tests under their own identity.
		if req.TeacherID != sub && rbac.RoleFromContext(r.Context()) != "admin" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		t := quiz.Test{
			Name:        req.Name,
			Description: req.Description,
			TimeLimit:   req.TimeLimit,
			Questions:   req.Questions,
			TeacherID:   req.TeacherID,
		}
		if err := quiz.ValidateNewTest(&t); err != nil {
			writeError(w, err)
			return
		}
		if err := store.CreateTest(r.Context(), &t); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"code": t.Code, "testId": t.ID})
	}
}

// GET /tests/{code}
//
// Students receive the taking view: question text, options and marks, no
// answer keys. The owning teacher gets the full definition back.
func GetTestByCodeHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")
		t, err := store.GetTestByCode(r.Context(), code)
		if err != nil {
			writeError(w, err)
			return
		}
		sub := auth.SubjectFromContext(r.Context())
		role := rbac.RoleFromContext(r.Context())
		if t.TeacherID == sub && (role == "teacher" || role == "admin") {
			writeJSON(w, http.StatusOK, struct {
				quiz.Test
				TotalMarks int `json:"totalMarks"`
			}{t, t.TotalMarks()})
			return
		}
		writeJSON(w, http.StatusOK, t.StudentView())
	}
}

// GET /teachers/{teacherID}/tests
func ListTeacherTestsHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teacherID := chi.URLParam(r, "teacherID")
		sub := auth.SubjectFromContext(r.Context())
		if teacherID != sub && rbac.RoleFromContext(r.Context()) != "admin" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		list, err := store.ListTestsByTeacher(r.Context(), teacherID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}
