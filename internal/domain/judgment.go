package domain

// Status is the outcome of one evaluation.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusAbstain Status = "abstain"
	StatusError   Status = "error"
)

// Check is a fine-grained sub-assertion recorded by a judge.
// Checks are informational only; voting never consults them.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// Judgment is one evaluator's verdict. Constructed once per evaluation,
// immutable afterward.
type Judgment struct {
	Status    Status
	Score     Score // optional; typically absent for abstain/error
	Reasoning string
	Checks    []Check
	Err       error // set only when Status == StatusError
}

// Pass reports whether the judgment passed.
func (j Judgment) Pass() bool {
	return j.Status == StatusPass
}

// NewPass creates a passing judgment.
func NewPass(score Score, reasoning string) Judgment {
	return Judgment{Status: StatusPass, Score: score, Reasoning: reasoning}
}

// NewFail creates a failing judgment.
func NewFail(score Score, reasoning string) Judgment {
	return Judgment{Status: StatusFail, Score: score, Reasoning: reasoning}
}

// NewAbstain creates an abstaining judgment.
func NewAbstain(reasoning string) Judgment {
	return Judgment{Status: StatusAbstain, Reasoning: reasoning}
}

// NewError creates an error judgment carrying the cause. Used when a judge
// fails to evaluate; the jury keeps voting with the remaining judgments.
func NewError(err error) Judgment {
	reasoning := "evaluation failed"
	if err != nil {
		reasoning = "evaluation failed: " + err.Error()
	}
	return Judgment{Status: StatusError, Reasoning: reasoning, Err: err}
}
