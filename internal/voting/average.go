package voting

import (
	"fmt"

	"github.com/anthropics/agentic-jury/internal/domain"
)

// passThreshold is the inclusive boundary for numeric strategies: a mean
// or median of exactly 0.5 passes.
const passThreshold = 0.5

// Average passes when the arithmetic mean of the normalized scores reaches
// the threshold. Judgments without a score contribute 0.0.
type Average struct{}

// Name implements Strategy.
func (Average) Name() string { return "AverageVoting" }

// Aggregate implements Strategy. Weights are ignored.
func (Average) Aggregate(judgments []domain.NamedJudgment, _ map[string]float64) (domain.Judgment, error) {
	if err := validateJudgments(judgments); err != nil {
		return domain.Judgment{}, err
	}

	var sum float64
	for _, nj := range judgments {
		n, err := normalized(nj.Judgment)
		if err != nil {
			return domain.Judgment{}, fmt.Errorf("judge %q: %w", nj.Name, err)
		}
		sum += n
	}
	mean := sum / float64(len(judgments))

	return meanJudgment(mean, len(judgments), "Average"), nil
}

// meanJudgment packages a mean-style result shared by Average and
// WeightedAverage.
func meanJudgment(mean float64, count int, label string) domain.Judgment {
	score := domain.NumericalScore{Value: mean, Min: 0, Max: 1}
	if mean >= passThreshold {
		return domain.NewPass(score,
			fmt.Sprintf("%s score %.2f across %d judges meets threshold %.2f", label, mean, count, passThreshold))
	}
	return domain.NewFail(score,
		fmt.Sprintf("%s score %.2f across %d judges below threshold %.2f", label, mean, count, passThreshold))
}
