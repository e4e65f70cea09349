package quiz

import "errors"

// Error taxonomy surfaced to API handlers. Wrap with fmt.Errorf("%w: ...")
// to attach a human-readable reason; handlers match with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrDuplicateAttempt = errors.New("attempt already submitted")
	ErrInvalidState     = errors.New("invalid state")
)
