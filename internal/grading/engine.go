package grading

// Q is a minimal view of a question needed for grading.
// Keep this in sync with whatever fields your store uses.
type Q struct {
	Type     string // "mcq" | "short" | "long"
	Points   int
	Correct  int    // mcq: zero-based index of the correct option
	Keywords string // short/long: comma-delimited keyword set
}

// Response is one student's answer to a single question.
// Text carries the free-text answer; Selected the chosen option index
// (nil when the question was left blank or is not multiple-choice).
type Response struct {
	Text     string
	Selected *int
}

// Result is the outcome of grading a single question response.
type Result struct {
	AutoPoints float64 // points awarded
	MaxPoints  float64 // the question's max points
}

// Strategy grades a single question.
type Strategy interface {
	Grade(q Q, resp Response) Result
}

// Grader routes by question type to the correct Strategy.
type Grader interface {
	Grade(q Q, resp Response) Result
}

type defaultGrader struct {
	strategies map[string]Strategy
}

func (g *defaultGrader) Grade(q Q, resp Response) Result {
	s, ok := g.strategies[q.Type]
	if !ok {
		return Result{MaxPoints: float64(q.Points)}
	}
	return s.Grade(q, resp)
}

// NewDefaultGrader installs built-in strategies.
func NewDefaultGrader() Grader {
	return &defaultGrader{
		strategies: map[string]Strategy{
			"mcq":   choiceStrategy{},
			"short": keywordStrategy{},
			"long":  keywordStrategy{},
		},
	}
}

// Score grades a full submission and sums the awarded points.
// responses[i] answers questions[i]; a missing entry scores zero.
func Score(g Grader, questions []Q, responses []Response) float64 {
	total := 0.0
	for i, q := range questions {
		if i >= len(responses) {
			break
		}
		total += g.Grade(q, responses[i]).AutoPoints
	}
	return total
}

// --- Strategies ---

type choiceStrategy struct{}

func (choiceStrategy) Grade(q Q, resp Response) Result {
	res := Result{MaxPoints: float64(q.Points)}
	// All-or-nothing: no partial credit for multiple choice.
	if resp.Selected != nil && *resp.Selected == q.Correct {
		res.AutoPoints = res.MaxPoints
	}
	return res
}

type keywordStrategy struct{}

func (keywordStrategy) Grade(q Q, resp Response) Result {
	res := Result{MaxPoints: float64(q.Points)}
	matched, total := keywordCoverage(q.Keywords, resp.Text)
	if total == 0 {
		return res
	}
	res.AutoPoints = res.MaxPoints * (float64(matched) / float64(total))
	return res
}
