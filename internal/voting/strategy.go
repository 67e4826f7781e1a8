// Package voting provides strategies that reduce a set of judgments to a
// single aggregate judgment.
package voting

import (
	"fmt"

	"github.com/anthropics/agentic-jury/internal/domain"
)

// Strategy aggregates named judgments (plus optional per-judge weights)
// into one judgment. Aggregate is a pure function: identical inputs yield
// identical judgments.
type Strategy interface {
	// Name identifies the strategy.
	Name() string
	// Aggregate reduces judgments to one judgment. The weights map is
	// keyed by judge name; strategies that do not use weights ignore it.
	// A nil or empty judgment list is an invalid-argument error.
	Aggregate(judgments []domain.NamedJudgment, weights map[string]float64) (domain.Judgment, error)
}

// validateJudgments rejects nil and empty judgment lists.
func validateJudgments(judgments []domain.NamedJudgment) error {
	if len(judgments) == 0 {
		return fmt.Errorf("%w: empty judgment list", domain.ErrInvalidArgument)
	}
	return nil
}

// normalized returns the judgment's score on [0, 1]. A missing score counts
// as 0.0: absent evidence counts against passing.
func normalized(j domain.Judgment) (float64, error) {
	if j.Score == nil {
		return 0.0, nil
	}
	return j.Score.Normalized()
}

// votesPass converts a judgment to a boolean vote. Boolean scores vote
// their value directly; numeric-bearing scores pass at normalized >= 0.5;
// a missing score votes false.
func votesPass(j domain.Judgment) (bool, error) {
	if j.Score == nil {
		return false, nil
	}
	if b, ok := j.Score.(domain.BooleanScore); ok {
		return b.Value, nil
	}
	n, err := j.Score.Normalized()
	if err != nil {
		return false, err
	}
	return n >= 0.5, nil
}
