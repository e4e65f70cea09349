package quiz

import (
	"fmt"
	"strings"
)

// ValidateNewTest checks a test before anything is written. Failures carry
// enough detail for the author to correct the form, including which question
// was rejected.
func ValidateNewTest(t *Test) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: test name is required", ErrValidation)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: test description is required", ErrValidation)
	}
	if t.TimeLimit < 1 {
		return fmt.Errorf("%w: time limit must be at least 1 minute", ErrValidation)
	}
	if strings.TrimSpace(t.TeacherID) == "" {
		return fmt.Errorf("%w: teacher ID is required", ErrValidation)
	}
	if len(t.Questions) == 0 {
		return fmt.Errorf("%w: at least one question is required", ErrValidation)
	}
	for i, q := range t.Questions {
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("%w (question %d)", err, i+1)
		}
	}
	return nil
}

func validateQuestion(q Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: question text is required", ErrValidation)
	}
	if q.Marks < 1 {
		return fmt.Errorf("%w: marks must be at least 1", ErrValidation)
	}
	switch q.Type {
	case TypeMCQ:
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: multiple-choice questions need at least 2 options", ErrValidation)
		}
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("%w: options must not be empty", ErrValidation)
			}
		}
		if q.CorrectOption == nil || *q.CorrectOption < 0 || *q.CorrectOption >= len(q.Options) {
			return fmt.Errorf("%w: correct option must be a valid option index", ErrValidation)
		}
	case TypeShort, TypeLong:
		// An empty keyword set is allowed; such questions simply score zero.
	default:
		return fmt.Errorf("%w: unknown question type %q", ErrValidation, q.Type)
	}
	return nil
}

// ValidateSubmission checks that a submission covers every question exactly
// once in both answer arrays.
func ValidateSubmission(t *Test, answers []string, selected []*int) error {
	if len(answers) != len(t.Questions) {
		return fmt.Errorf("%w: expected %d answers, got %d", ErrValidation, len(t.Questions), len(answers))
	}
	if len(selected) != len(t.Questions) {
		return fmt.Errorf("%w: expected %d selected options, got %d", ErrValidation, len(t.Questions), len(selected))
	}
	return nil
}
