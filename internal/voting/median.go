package voting

import (
	"fmt"
	"sort"

	"github.com/anthropics/agentic-jury/internal/domain"
)

// Median passes when the median of the normalized scores reaches the
// threshold. The median resists outlier judges in a way the mean does not.
type Median struct{}

// Name implements Strategy.
func (Median) Name() string { return "MedianVoting" }

// Aggregate implements Strategy. Weights are ignored.
func (Median) Aggregate(judgments []domain.NamedJudgment, _ map[string]float64) (domain.Judgment, error) {
	if err := validateJudgments(judgments); err != nil {
		return domain.Judgment{}, err
	}

	values := make([]float64, 0, len(judgments))
	for _, nj := range judgments {
		n, err := normalized(nj.Judgment)
		if err != nil {
			return domain.Judgment{}, fmt.Errorf("judge %q: %w", nj.Name, err)
		}
		values = append(values, n)
	}
	sort.Float64s(values)

	var median float64
	mid := len(values) / 2
	if len(values)%2 == 1 {
		median = values[mid]
	} else {
		median = (values[mid-1] + values[mid]) / 2
	}

	score := domain.NumericalScore{Value: median, Min: 0, Max: 1}
	if median >= passThreshold {
		return domain.NewPass(score,
			fmt.Sprintf("Median score %.2f across %d judges meets threshold %.2f", median, len(values), passThreshold)), nil
	}
	return domain.NewFail(score,
		fmt.Sprintf("Median score %.2f across %d judges below threshold %.2f", median, len(values), passThreshold)), nil
}
