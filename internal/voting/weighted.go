package voting

import (
	"fmt"

	"github.com/anthropics/agentic-jury/internal/domain"
)

// WeightedAverage is Average with per-judge weights keyed by judge name.
// A name missing from the weights map carries weight 1.0. When the total
// applied weight is zero the strategy degrades to the unweighted average;
// zeroed weights are a configuration artifact, not a failed vote.
type WeightedAverage struct{}

// Name implements Strategy.
func (WeightedAverage) Name() string { return "weighted" }

// Aggregate implements Strategy.
func (w WeightedAverage) Aggregate(judgments []domain.NamedJudgment, weights map[string]float64) (domain.Judgment, error) {
	if err := validateJudgments(judgments); err != nil {
		return domain.Judgment{}, err
	}

	var weightedSum, totalWeight float64
	for _, nj := range judgments {
		n, err := normalized(nj.Judgment)
		if err != nil {
			return domain.Judgment{}, fmt.Errorf("judge %q: %w", nj.Name, err)
		}
		weight := 1.0
		if v, ok := weights[nj.Name]; ok {
			weight = v
		}
		weightedSum += n * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		j, err := Average{}.Aggregate(judgments, nil)
		if err != nil {
			return domain.Judgment{}, err
		}
		j.Reasoning = "Total weight is zero, fell back to unweighted average. " + j.Reasoning
		return j, nil
	}

	mean := weightedSum / totalWeight
	return meanJudgment(mean, len(judgments), "Weighted average"), nil
}
