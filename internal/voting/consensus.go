package voting

import (
	"fmt"

	"github.com/anthropics/agentic-jury/internal/domain"
)

// Consensus requires unanimity. Every judgment is reduced to a boolean
// vote; any disagreement fails, even a single dissenter. A majority is
// never sufficient.
type Consensus struct{}

// Name implements Strategy.
func (Consensus) Name() string { return "Consensus" }

// Aggregate implements Strategy. Weights are ignored.
func (Consensus) Aggregate(judgments []domain.NamedJudgment, _ map[string]float64) (domain.Judgment, error) {
	if err := validateJudgments(judgments); err != nil {
		return domain.Judgment{}, err
	}

	var passed, failed int
	for _, nj := range judgments {
		vote, err := votesPass(nj.Judgment)
		if err != nil {
			return domain.Judgment{}, fmt.Errorf("judge %q: %w", nj.Name, err)
		}
		if vote {
			passed++
		} else {
			failed++
		}
	}

	total := len(judgments)
	switch {
	case failed == 0:
		return domain.NewPass(domain.BooleanScore{Value: true},
			fmt.Sprintf("Unanimous consensus: all %d judges passed", total)), nil
	case passed == 0:
		return domain.NewFail(domain.BooleanScore{Value: false},
			fmt.Sprintf("Unanimous consensus: all %d judges failed", total)), nil
	default:
		return domain.NewFail(domain.BooleanScore{Value: false},
			fmt.Sprintf("No consensus: %d passed, %d failed", passed, failed)), nil
	}
}
