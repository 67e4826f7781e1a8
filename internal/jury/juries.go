package jury

import (
	"fmt"

	"github.com/anthropics/agentic-jury/internal/domain"
	"github.com/anthropics/agentic-jury/internal/voting"
)

// FromJudges builds a SimpleJury with default settings: all judges run
// concurrently with unit weights.
func FromJudges(strategy voting.Strategy, judges ...Judge) (*SimpleJury, error) {
	return NewSimpleJury(strategy, Config{}, judges...)
}

// Combine builds a two-element MetaJury over a and b.
func Combine(a, b Jury, strategy voting.Strategy) (*MetaJury, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: both juries must be non-nil", domain.ErrInvalidArgument)
	}
	return NewMetaJury(strategy, a, b)
}

// AllOf builds an N-element MetaJury, mirroring FromJudges validation.
func AllOf(strategy voting.Strategy, juries ...Jury) (*MetaJury, error) {
	return NewMetaJury(strategy, juries...)
}
