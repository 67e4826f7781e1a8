package voting

import (
	"fmt"

	"github.com/anthropics/agentic-jury/internal/domain"
)

// TiePolicy resolves majority votes where pass and fail counts are equal.
type TiePolicy string

const (
	TiePass    TiePolicy = "pass"
	TieFail    TiePolicy = "fail"
	TieAbstain TiePolicy = "abstain"
)

// ErrorPolicy governs how error-status judgments are folded into a
// majority vote.
type ErrorPolicy string

const (
	// ErrorsAsFail counts errored judges as fail votes.
	ErrorsAsFail ErrorPolicy = "treat_as_fail"
	// ErrorsAsAbstain counts errored judges as abstentions.
	ErrorsAsAbstain ErrorPolicy = "treat_as_abstain"
	// ErrorsIgnore drops errored judges from the tally entirely.
	ErrorsIgnore ErrorPolicy = "ignore"
)

// Majority passes when strictly more judges pass than fail. Abstentions
// never count toward the tally; errored judges are folded in per the
// configured ErrorPolicy, and equal counts resolve per the TiePolicy.
type Majority struct {
	Ties   TiePolicy
	Errors ErrorPolicy
}

// NewMajority creates a majority strategy with the given policies.
func NewMajority(ties TiePolicy, errors ErrorPolicy) Majority {
	return Majority{Ties: ties, Errors: errors}
}

// Name implements Strategy.
func (Majority) Name() string { return "majority" }

// Aggregate implements Strategy. Weights are ignored.
func (m Majority) Aggregate(judgments []domain.NamedJudgment, _ map[string]float64) (domain.Judgment, error) {
	if err := validateJudgments(judgments); err != nil {
		return domain.Judgment{}, err
	}

	var passed, failed, abstained, errored int
	for _, nj := range judgments {
		switch nj.Judgment.Status {
		case domain.StatusPass:
			passed++
		case domain.StatusFail:
			failed++
		case domain.StatusAbstain:
			abstained++
		case domain.StatusError:
			errored++
		}
	}

	switch m.Errors {
	case ErrorsAsAbstain:
		abstained += errored
	case ErrorsIgnore:
		// Errored judges count toward neither side.
	default:
		// ErrorsAsFail is the zero-value behavior.
		failed += errored
	}

	if passed == 0 && failed == 0 {
		return domain.NewAbstain("All judges abstained"), nil
	}

	switch {
	case passed > failed:
		return domain.NewPass(domain.BooleanScore{Value: true},
			fmt.Sprintf("Majority passed: %d passed, %d failed", passed, failed)), nil
	case passed < failed:
		return domain.NewFail(domain.BooleanScore{Value: false},
			fmt.Sprintf("Majority failed: %d passed, %d failed", passed, failed)), nil
	}

	reasoning := fmt.Sprintf("Vote is a tie: %d passed, %d failed", passed, failed)
	switch m.Ties {
	case TiePass:
		return domain.NewPass(domain.BooleanScore{Value: true}, reasoning+"; tie resolved to pass"), nil
	case TieAbstain:
		return domain.NewAbstain(reasoning + "; tie resolved to abstain"), nil
	default:
		// TieFail is the zero-value behavior.
		return domain.NewFail(domain.BooleanScore{Value: false}, reasoning+"; tie resolved to fail"), nil
	}
}
