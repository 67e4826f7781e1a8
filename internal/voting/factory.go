package voting

import (
	"fmt"

	"github.com/anthropics/agentic-jury/internal/domain"
)

// SupportedStrategies lists the strategy kinds accepted in configuration.
var SupportedStrategies = []string{"majority", "average", "weighted", "median", "consensus"}

// New creates a strategy by kind. The tie and error policies only apply to
// the majority strategy; the others ignore them.
func New(kind string, ties TiePolicy, errors ErrorPolicy) (Strategy, error) {
	switch kind {
	case "majority":
		return NewMajority(ties, errors), nil
	case "average":
		return Average{}, nil
	case "weighted":
		return WeightedAverage{}, nil
	case "median":
		return Median{}, nil
	case "consensus":
		return Consensus{}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported strategy %q (supported: %v)",
			domain.ErrInvalidArgument, kind, SupportedStrategies)
	}
}
