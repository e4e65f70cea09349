package quiz_test

import (
	"regexp"
	"testing"

	"github.com/quizforge/quizforge/internal/quiz"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func TestNewCode_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := quiz.NewCode()
		if !codePattern.MatchString(code) {
			t.Fatalf("code %q is not 6 uppercase alphanumerics", code)
		}
	}
}

func TestNewCode_Spread(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[quiz.NewCode()] = true
	}
	// 1000 draws from a 36^6 space should essentially never collide; a
	// heavily repeating generator indicates broken randomness.
	if len(seen) < 990 {
		t.Errorf("only %d distinct codes out of 1000", len(seen))
	}
}
