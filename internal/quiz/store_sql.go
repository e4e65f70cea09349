package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/grading"
	syncx "github.com/quizforge/quizforge/internal/sync"
)

// codeRetries bounds code-collision retries at creation time. With a 36^6
// code space a handful of retries is already generous.
const codeRetries = 5

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
	grader grading.Grader
	events *syncx.EventRepo
}

func NewSQLStore(db *sql.DB, driver string, grader grading.Grader) *SQLStore {
	return &SQLStore{db: db, driver: driver, grader: grader, events: syncx.NewEventRepo(db)}
}

func (s *SQLStore) CreateTest(ctx context.Context, t *Test) error {
	qj, err := json.Marshal(t.Questions)
	if err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.IsActive = true
	t.CreatedAt = time.Now().Unix()

	for i := 0; i < codeRetries; i++ {
		t.Code = NewCode()
		_, err = s.db.ExecContext(ctx, `INSERT INTO tests (id,name,description,time_limit_min,questions_json,code,teacher_id,is_active,created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			t.ID, t.Name, t.Description, t.TimeLimit, string(qj), t.Code, t.TeacherID, t.IsActive, t.CreatedAt)
		if err == nil {
			s.events.Append(ctx, syncx.Event{Type: syncx.TestCreated, Key: t.ID, DataJSON: fmt.Sprintf(`{"code":%q}`, t.Code)})
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
		// Code collision: regenerate and try again.
	}
	return fmt.Errorf("could not assign a unique test code: %w", err)
}

func (s *SQLStore) GetTestByCode(ctx context.Context, code string) (Test, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	return s.getTest(ctx, `SELECT id,name,description,time_limit_min,questions_json,code,teacher_id,is_active,created_at
		FROM tests WHERE code=$1 AND is_active=$2`, code, true)
}

func (s *SQLStore) GetTest(ctx context.Context, id string) (Test, error) {
	return s.getTest(ctx, `SELECT id,name,description,time_limit_min,questions_json,code,teacher_id,is_active,created_at
		FROM tests WHERE id=$1`, id)
}

func (s *SQLStore) getTest(ctx context.Context, query string, args ...any) (Test, error) {
	row := s.db.QueryRowContext(ctx, query, args...)
	var t Test
	var qjson string
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.TimeLimit, &qjson, &t.Code, &t.TeacherID, &t.IsActive, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Test{}, fmt.Errorf("%w: test", ErrNotFound)
		}
		return Test{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &t.Questions); err != nil {
		return Test{}, err
	}
	return t, nil
}

func (s *SQLStore) ListTestsByTeacher(ctx context.Context, teacherID string) ([]TestSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT t.id, t.name, t.code, t.questions_json, t.created_at,
			(SELECT COUNT(*) FROM attempts a WHERE a.test_id = t.id)
		FROM tests t WHERE t.teacher_id=$1 ORDER BY t.created_at DESC, t.id DESC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TestSummary{}
	for rows.Next() {
		var ts TestSummary
		var qjson string
		if err := rows.Scan(&ts.ID, &ts.Name, &ts.Code, &qjson, &ts.CreatedAt, &ts.AttemptCount); err != nil {
			return nil, err
		}
		var qs []Question
		if err := json.Unmarshal([]byte(qjson), &qs); err != nil {
			return nil, err
		}
		ts.QuestionCount = len(qs)
		out = append(out, ts)
	}
	return out, rows.Err()
}

func (s *SQLStore) SubmitAttempt(ctx context.Context, code, studentID string, answers []string, selected []*int) (Attempt, Test, error) {
	t, err := s.GetTestByCode(ctx, code)
	if err != nil {
		return Attempt{}, Test{}, err
	}
	if err := ValidateSubmission(&t, answers, selected); err != nil {
		return Attempt{}, Test{}, err
	}

	// Authoritative score: recomputed here, never taken from the client.
	score := grading.Score(s.grader, t.GradingQuestions(), GradingResponses(answers, selected))

	a := Attempt{
		ID:          uuid.NewString(),
		TestID:      t.ID,
		StudentID:   studentID,
		Status:      StatusSubmitted,
		Score:       score,
		Answers:     answers,
		Selected:    selected,
		SubmittedAt: time.Now().Unix(),
	}
	aj, _ := json.Marshal(a.Answers)
	sj, _ := json.Marshal(a.Selected)

	// The UNIQUE(test_id, student_id) index makes this insert the atomic
	// duplicate check: of two racing submissions at most one commits.
	_, err = s.db.ExecContext(ctx, `INSERT INTO attempts (id,test_id,student_id,status,score,answers_json,selected_json,submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.TestID, a.StudentID, a.Status, a.Score, string(aj), string(sj), a.SubmittedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Attempt{}, Test{}, ErrDuplicateAttempt
		}
		return Attempt{}, Test{}, err
	}
	s.events.Append(ctx, syncx.Event{Type: syncx.AttemptSubmitted, Key: a.ID, DataJSON: fmt.Sprintf(`{"test_id":%q,"student_id":%q,"score":%g}`, a.TestID, a.StudentID, a.Score)})
	return a, t, nil
}

func (s *SQLStore) ListAttemptsByTest(ctx context.Context, testID string) ([]Attempt, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,test_id,student_id,status,score,answers_json,selected_json,submitted_at
		FROM attempts WHERE test_id=$1 ORDER BY submitted_at ASC, id ASC`, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Attempt{}
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) ListAttemptsByStudent(ctx context.Context, studentID string) ([]StudentAttempt, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT a.id,a.test_id,a.student_id,a.status,a.score,a.answers_json,a.selected_json,a.submitted_at,
			t.name, t.questions_json
		FROM attempts a JOIN tests t ON t.id = a.test_id
		WHERE a.student_id=$1 ORDER BY a.submitted_at DESC, a.id DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StudentAttempt{}
	for rows.Next() {
		var a Attempt
		var ajson, sjson, name, qjson string
		if err := rows.Scan(&a.ID, &a.TestID, &a.StudentID, &a.Status, &a.Score, &ajson, &sjson, &a.SubmittedAt, &name, &qjson); err != nil {
			return nil, err
		}
		if err := unmarshalAttemptArrays(&a, ajson, sjson); err != nil {
			return nil, err
		}
		var qs []Question
		if err := json.Unmarshal([]byte(qjson), &qs); err != nil {
			return nil, err
		}
		total := 0
		for _, q := range qs {
			total += q.Marks
		}
		out = append(out, StudentAttempt{TestID: a.TestID, TestName: name, Attempt: a, TotalMarks: total})
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (Attempt, error) {
	var a Attempt
	var ajson, sjson string
	if err := row.Scan(&a.ID, &a.TestID, &a.StudentID, &a.Status, &a.Score, &ajson, &sjson, &a.SubmittedAt); err != nil {
		return Attempt{}, err
	}
	if err := unmarshalAttemptArrays(&a, ajson, sjson); err != nil {
		return Attempt{}, err
	}
	return a, nil
}

func unmarshalAttemptArrays(a *Attempt, ajson, sjson string) error {
	if err := json.Unmarshal([]byte(ajson), &a.Answers); err != nil {
		return err
	}
	return json.Unmarshal([]byte(sjson), &a.Selected)
}

// isUniqueViolation matches both drivers without importing their error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") || // postgres
		strings.Contains(msg, "sqlstate 23505")
}
