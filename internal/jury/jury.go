// Package jury orchestrates judges and aggregates their judgments through
// a voting strategy.
package jury

import (
	"context"
	"fmt"

	"github.com/anthropics/agentic-jury/internal/domain"
)

// Judge is any evaluator producing one judgment from a context.
type Judge interface {
	Judge(ctx context.Context, jc domain.JudgmentContext) (domain.Judgment, error)
}

// Named is implemented by judges and juries that carry a display name.
// Anything without one is auto-named by position.
type Named interface {
	Name() string
}

// JudgeFunc adapts a plain function to the Judge interface.
type JudgeFunc func(ctx context.Context, jc domain.JudgmentContext) (domain.Judgment, error)

// Judge implements Judge.
func (f JudgeFunc) Judge(ctx context.Context, jc domain.JudgmentContext) (domain.Judgment, error) {
	return f(ctx, jc)
}

// Jury runs a vote over a judgment context and returns the full verdict.
type Jury interface {
	Vote(ctx context.Context, jc domain.JudgmentContext) (domain.Verdict, error)
}

// displayName returns v's own name when it carries a non-empty one,
// otherwise a positional fallback like "Judge#3" (1-based).
func displayName(v any, kind string, position int) string {
	if named, ok := v.(Named); ok {
		if name := named.Name(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%s#%d", kind, position)
}

// evaluate runs a single judge, converting returned errors and panics into
// error judgments so one misbehaving judge never aborts the vote.
func evaluate(ctx context.Context, judge Judge, jc domain.JudgmentContext) (result domain.Judgment) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.NewError(fmt.Errorf("judge panicked: %v", r))
		}
	}()

	j, err := judge.Judge(ctx, jc)
	if err != nil {
		return domain.NewError(err)
	}
	return j
}
