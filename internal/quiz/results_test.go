package quiz_test

import (
	"errors"
	"testing"

	"github.com/quizforge/quizforge/internal/quiz"
)

func TestPercentageAndBuckets(t *testing.T) {
	tests := []struct {
		score      float64
		total      int
		wantPct    int
		wantBucket string
	}{
		{7, 10, 70, quiz.BucketExcellent},
		{4, 10, 40, quiz.BucketNeedsWork},
		{7.5, 10, 75, quiz.BucketExcellent},
		{5, 10, 50, quiz.BucketAverage},
		{6.9, 10, 69, quiz.BucketAverage},
		{0, 10, 0, quiz.BucketNeedsWork},
		{10, 10, 100, quiz.BucketExcellent},
		{2.45, 7, 35, quiz.BucketNeedsWork},
	}
	for _, tc := range tests {
		if pct := quiz.Percentage(tc.score, tc.total); pct != tc.wantPct {
			t.Errorf("Percentage(%v, %d) = %d, want %d", tc.score, tc.total, pct, tc.wantPct)
		}
		if b := quiz.BucketFor(tc.wantPct); b != tc.wantBucket {
			t.Errorf("BucketFor(%d) = %q, want %q", tc.wantPct, b, tc.wantBucket)
		}
	}
}

func TestBuildResults(t *testing.T) {
	tt := validTest() // total marks 5
	tt.ID = "test-1"
	attempts := []quiz.Attempt{
		{StudentID: "s1", Score: 5, SubmittedAt: 100},   // 100% excellent
		{StudentID: "s2", Score: 4, SubmittedAt: 200},   // 80% excellent
		{StudentID: "s3", Score: 1.5, SubmittedAt: 300}, // 30% needs improvement
	}

	res, err := quiz.BuildResults(&tt, attempts)
	if err != nil {
		t.Fatalf("BuildResults: %v", err)
	}
	if res.TestTitle != tt.Name || res.TotalMarks != 5 {
		t.Errorf("header = (%q, %d), want (%q, 5)", res.TestTitle, res.TotalMarks, tt.Name)
	}
	if len(res.Attempts) != 3 {
		t.Fatalf("got %d rows, want 3", len(res.Attempts))
	}
	if res.Attempts[2].Percentage != 30 {
		t.Errorf("s3 percentage = %d, want 30", res.Attempts[2].Percentage)
	}

	// The average bucket has no members and must be omitted.
	want := map[string]int{quiz.BucketExcellent: 2, quiz.BucketNeedsWork: 1}
	if len(res.Buckets) != len(want) {
		t.Fatalf("buckets = %v, want exactly %v", res.Buckets, want)
	}
	for _, b := range res.Buckets {
		if want[b.Name] != b.Count {
			t.Errorf("bucket %q = %d, want %d", b.Name, b.Count, want[b.Name])
		}
	}
}

func TestBuildResults_NoAttempts(t *testing.T) {
	tt := validTest()
	res, err := quiz.BuildResults(&tt, nil)
	if err != nil {
		t.Fatalf("BuildResults: %v", err)
	}
	if len(res.Attempts) != 0 || len(res.Buckets) != 0 {
		t.Errorf("empty test produced rows %v buckets %v", res.Attempts, res.Buckets)
	}
}

func TestBuildResults_ZeroTotalMarks(t *testing.T) {
	tt := quiz.Test{ID: "broken", Name: "broken"}
	_, err := quiz.BuildResults(&tt, []quiz.Attempt{{StudentID: "s1", Score: 1}})
	if !errors.Is(err, quiz.ErrInvalidState) {
		t.Errorf("got %v, want ErrInvalidState", err)
	}
}
