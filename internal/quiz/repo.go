package quiz

import "context"

// Store is the durable record of tests and their attempts.
type Store interface {
	// CreateTest validates nothing: callers run ValidateNewTest first.
	// The store assigns the ID and a unique share code before persisting.
	CreateTest(ctx context.Context, t *Test) error

	// GetTestByCode returns the full test, answer keys included. Handlers
	// decide which projection to serve.
	GetTestByCode(ctx context.Context, code string) (Test, error)

	// GetTest returns the full test by its identifier.
	GetTest(ctx context.Context, id string) (Test, error)

	// ListTestsByTeacher returns the owner's tests, most recent first.
	ListTestsByTeacher(ctx context.Context, teacherID string) ([]TestSummary, error)

	// SubmitAttempt grades and records one attempt for (code, studentID).
	// At most one attempt per (test, student) pair ever commits; a second
	// submission fails with ErrDuplicateAttempt and writes nothing.
	SubmitAttempt(ctx context.Context, code, studentID string, answers []string, selected []*int) (Attempt, Test, error)

	// ListAttemptsByTest returns every attempt recorded against a test.
	ListAttemptsByTest(ctx context.Context, testID string) ([]Attempt, error)

	// ListAttemptsByStudent returns, for every test the student has
	// attempted, the attempt together with the test's derived total marks.
	ListAttemptsByStudent(ctx context.Context, studentID string) ([]StudentAttempt, error)
}
