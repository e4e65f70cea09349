package quiz

import "github.com/quizforge/quizforge/internal/grading"

// Question types.
const (
	TypeMCQ   = "mcq"
	TypeShort = "short"
	TypeLong  = "long"
)

// Attempt status values. Attempts are written once, at submission, so only
// StatusSubmitted ever reaches the store; the others exist for the wire shape.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusSubmitted  = "submitted"
)

type Question struct {
	Type          string   `json:"type"`
	Text          string   `json:"questionText"`
	Marks         int      `json:"marks"`
	Options       []string `json:"options,omitempty"`       // mcq only
	CorrectOption *int     `json:"correctOption,omitempty"` // mcq only; stripped from the student view
	Keywords      string   `json:"keywords,omitempty"`      // short/long: comma-delimited, stripped from the student view
}

type Test struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	TimeLimit   int        `json:"timeLimit"` // minutes
	Questions   []Question `json:"questions"`
	Code        string     `json:"code"`
	TeacherID   string     `json:"teacherID"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   int64      `json:"createdAt"` // unix seconds
}

// TotalMarks is always derived from the live question list, never stored.
func (t *Test) TotalMarks() int {
	sum := 0
	for _, q := range t.Questions {
		sum += q.Marks
	}
	return sum
}

type Attempt struct {
	ID          string   `json:"id"`
	TestID      string   `json:"testID"`
	StudentID   string   `json:"studentID"`
	Status      string   `json:"status"`
	Score       float64  `json:"score"`
	Answers     []string `json:"answers"`         // one per question, "" where not applicable
	Selected    []*int   `json:"selectedOptions"` // one per question, null where not applicable
	SubmittedAt int64    `json:"submittedAt"`     // unix seconds
}

// StudentQuestion is the projection served to test takers: no correct-option
// index, no keyword list.
type StudentQuestion struct {
	Type    string   `json:"type"`
	Text    string   `json:"questionText"`
	Marks   int      `json:"marks"`
	Options []string `json:"options,omitempty"`
}

// TestView is what a student fetching a test by code receives.
type TestView struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	TimeLimit   int               `json:"timeLimit"`
	Questions   []StudentQuestion `json:"questions"`
	TotalMarks  int               `json:"totalMarks"`
}

// StudentView strips the answer key from every question.
func (t *Test) StudentView() TestView {
	qs := make([]StudentQuestion, len(t.Questions))
	for i, q := range t.Questions {
		qs[i] = StudentQuestion{Type: q.Type, Text: q.Text, Marks: q.Marks, Options: q.Options}
	}
	return TestView{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		TimeLimit:   t.TimeLimit,
		Questions:   qs,
		TotalMarks:  t.TotalMarks(),
	}
}

// TestSummary is the owner-dashboard row: no attempt detail beyond counts.
type TestSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Code          string `json:"code"`
	QuestionCount int    `json:"questionCount"`
	AttemptCount  int    `json:"attemptCount"`
	CreatedAt     int64  `json:"createdAt"`
}

// StudentAttempt pairs a student's attempt with the test it belongs to.
type StudentAttempt struct {
	TestID     string  `json:"testID"`
	TestName   string  `json:"name"`
	Attempt    Attempt `json:"attempt"`
	TotalMarks int     `json:"totalMarks"`
}

// GradingQuestions converts the question list to the grader's vocabulary.
func (t *Test) GradingQuestions() []grading.Q {
	out := make([]grading.Q, len(t.Questions))
	for i, q := range t.Questions {
		gq := grading.Q{Type: q.Type, Points: q.Marks, Keywords: q.Keywords}
		if q.CorrectOption != nil {
			gq.Correct = *q.CorrectOption
		}
		out[i] = gq
	}
	return out
}

// GradingResponses pairs answers and selections into grader responses.
// Both slices must already be length-checked against the question list.
func GradingResponses(answers []string, selected []*int) []grading.Response {
	n := len(answers)
	if len(selected) > n {
		n = len(selected)
	}
	out := make([]grading.Response, n)
	for i := range out {
		if i < len(answers) {
			out[i].Text = answers[i]
		}
		if i < len(selected) {
			out[i].Selected = selected[i]
		}
	}
	return out
}
