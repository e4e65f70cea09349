package quiz

import (
	"fmt"
	"math"
)

// Bucket labels for the results chart. Buckets with zero members are
// omitted from the output.
const (
	BucketExcellent = "excellent"
	BucketAverage   = "average"
	BucketNeedsWork = "needs improvement"
)

type ResultRow struct {
	StudentID   string  `json:"studentID"`
	Score       float64 `json:"score"`
	TotalMarks  int     `json:"totalMarks"`
	Percentage  int     `json:"percentage"`
	SubmittedAt int64   `json:"submittedAt"`
}

type BucketCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Results struct {
	TestID     string        `json:"testID"`
	TestTitle  string        `json:"testTitle"`
	TotalMarks int           `json:"totalMarks"`
	Attempts   []ResultRow   `json:"attempts"`
	Buckets    []BucketCount `json:"buckets,omitempty"`
}

// BuildResults summarizes every attempt against a test. A zero total marks
// would divide by zero and cannot happen for a validated test; it is guarded
// anyway because results are computed from stored data.
func BuildResults(t *Test, attempts []Attempt) (Results, error) {
	total := t.TotalMarks()
	if total == 0 && len(attempts) > 0 {
		return Results{}, fmt.Errorf("%w: test %s has zero total marks", ErrInvalidState, t.ID)
	}

	res := Results{TestID: t.ID, TestTitle: t.Name, TotalMarks: total, Attempts: []ResultRow{}}
	counts := map[string]int{}
	for _, a := range attempts {
		pct := Percentage(a.Score, total)
		res.Attempts = append(res.Attempts, ResultRow{
			StudentID:   a.StudentID,
			Score:       a.Score,
			TotalMarks:  total,
			Percentage:  pct,
			SubmittedAt: a.SubmittedAt,
		})
		counts[BucketFor(pct)]++
	}
	for _, name := range []string{BucketExcellent, BucketAverage, BucketNeedsWork} {
		if counts[name] > 0 {
			res.Buckets = append(res.Buckets, BucketCount{Name: name, Count: counts[name]})
		}
	}
	return res, nil
}

// Percentage rounds score/total to the nearest whole percent.
func Percentage(score float64, totalMarks int) int {
	if totalMarks == 0 {
		return 0
	}
	return int(math.Round(score / float64(totalMarks) * 100))
}

// BucketFor maps a percentage to its chart bucket.
func BucketFor(pct int) string {
	switch {
	case pct >= 70:
		return BucketExcellent
	case pct >= 50:
		return BucketAverage
	default:
		return BucketNeedsWork
	}
}
