package grading_test

import (
	"math"
	"testing"

	"github.com/quizforge/quizforge/internal/grading"
)

func intPtr(i int) *int { return &i }

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestGradeMCQ_AllOrNothing(t *testing.T) {
	q := grading.Q{Type: "mcq", Points: 5, Correct: 2}
	g := grading.NewDefaultGrader()

	tests := []struct {
		name     string
		selected *int
		want     float64
	}{
		{name: "correct index", selected: intPtr(2), want: 5},
		{name: "wrong index", selected: intPtr(0), want: 0},
		{name: "out of range index", selected: intPtr(7), want: 0},
		{name: "no selection", selected: nil, want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := g.Grade(q, grading.Response{Selected: tc.selected})
			if !almostEqual(got.AutoPoints, tc.want) {
				t.Errorf("AutoPoints = %v, want %v", got.AutoPoints, tc.want)
			}
			if !almostEqual(got.MaxPoints, 5) {
				t.Errorf("MaxPoints = %v, want 5", got.MaxPoints)
			}
		})
	}
}

func TestGradeKeywords_Coverage(t *testing.T) {
	g := grading.NewDefaultGrader()

	tests := []struct {
		name     string
		qtype    string
		keywords string
		points   int
		answer   string
		want     float64
	}{
		{name: "all keywords matched", qtype: "short", keywords: "gravity,mass", points: 4, answer: "gravity acts on mass", want: 4},
		{name: "half matched", qtype: "short", keywords: "gravity,mass", points: 5, answer: "gravity pulls objects", want: 2.5},
		{name: "none matched", qtype: "short", keywords: "gravity,mass", points: 5, answer: "magnets are cool", want: 0},
		{name: "substring inside token", qtype: "short", keywords: "gravit", points: 3, answer: "it is gravitational", want: 3},
		{name: "keyword longer than token stem", qtype: "short", keywords: "gravity", points: 3, answer: "it is gravitational", want: 0},
		{name: "case insensitive", qtype: "long", keywords: "Element,COMPOUND", points: 2, answer: "an ELEMENT is not a compound", want: 2},
		{name: "keywords trimmed", qtype: "long", keywords: " gravity , mass ", points: 2, answer: "mass", want: 1},
		{name: "empty keyword set scores zero", qtype: "long", keywords: "", points: 10, answer: "anything at all", want: 0},
		{name: "empty answer", qtype: "short", keywords: "gravity", points: 3, answer: "", want: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := grading.Q{Type: tc.qtype, Points: tc.points, Keywords: tc.keywords}
			got := g.Grade(q, grading.Response{Text: tc.answer})
			if !almostEqual(got.AutoPoints, tc.want) {
				t.Errorf("AutoPoints = %v, want %v", got.AutoPoints, tc.want)
			}
		})
	}
}

// Matching k of n keywords must award exactly points*k/n, monotonically.
func TestGradeKeywords_Monotonic(t *testing.T) {
	g := grading.NewDefaultGrader()
	q := grading.Q{Type: "long", Points: 6, Keywords: "alpha,beta,gamma"}

	answers := []string{
		"nothing relevant",
		"alpha only",
		"alpha and beta",
		"alpha beta gamma",
	}
	prev := -1.0
	for k, ans := range answers {
		got := g.Grade(q, grading.Response{Text: ans}).AutoPoints
		want := 6 * float64(k) / 3
		if !almostEqual(got, want) {
			t.Errorf("matching %d of 3: AutoPoints = %v, want %v", k, got, want)
		}
		if got <= prev && k > 0 {
			t.Errorf("score not monotonic at k=%d: %v <= %v", k, got, prev)
		}
		prev = got
	}
}

func TestGradeUnknownType(t *testing.T) {
	g := grading.NewDefaultGrader()
	got := g.Grade(grading.Q{Type: "essay", Points: 5}, grading.Response{Text: "whatever"})
	if got.AutoPoints != 0 {
		t.Errorf("unknown type awarded %v points, want 0", got.AutoPoints)
	}
}

// The reference scenario: one MCQ (5 marks, correct option 1) plus one
// short answer (keywords "gravity,mass", 5 marks). Selecting option 1 and
// answering "gravity pulls objects" scores 5 + 2.5 = 7.5.
func TestScore_EndToEnd(t *testing.T) {
	questions := []grading.Q{
		{Type: "mcq", Points: 5, Correct: 1},
		{Type: "short", Points: 5, Keywords: "gravity,mass"},
	}
	responses := []grading.Response{
		{Selected: intPtr(1)},
		{Text: "gravity pulls objects"},
	}
	got := grading.Score(grading.NewDefaultGrader(), questions, responses)
	if !almostEqual(got, 7.5) {
		t.Errorf("Score = %v, want 7.5", got)
	}
}

func TestScore_ShortResponseSlice(t *testing.T) {
	questions := []grading.Q{
		{Type: "mcq", Points: 5, Correct: 0},
		{Type: "mcq", Points: 5, Correct: 0},
	}
	// Only the first question answered.
	got := grading.Score(grading.NewDefaultGrader(), questions, []grading.Response{{Selected: intPtr(0)}})
	if !almostEqual(got, 5) {
		t.Errorf("Score = %v, want 5", got)
	}
}
