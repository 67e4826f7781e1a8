package jury

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/anthropics/agentic-jury/internal/domain"
	"github.com/anthropics/agentic-jury/internal/voting"
)

// MetaJury votes over the aggregated judgments of a fixed set of
// sub-juries, preserving each sub-jury's full verdict for traceability.
type MetaJury struct {
	name     string
	names    []string
	juries   []Jury
	strategy voting.Strategy
}

// NewMetaJury creates a jury of juries. Sub-jury display names resolve the
// same way judge names do: explicit names kept, anonymous juries become
// "Jury#<position>", collisions suffixed.
func NewMetaJury(strategy voting.Strategy, juries ...Jury) (*MetaJury, error) {
	if strategy == nil {
		return nil, fmt.Errorf("%w: strategy is required", domain.ErrInvalidArgument)
	}
	if len(juries) == 0 {
		return nil, fmt.Errorf("%w: at least one jury is required", domain.ErrInvalidArgument)
	}

	names := make([]string, len(juries))
	for i, sub := range juries {
		if sub == nil {
			return nil, fmt.Errorf("%w: jury %d is nil", domain.ErrInvalidArgument, i+1)
		}
		names[i] = displayName(sub, "Jury", i+1)
	}
	names = domain.DedupeNames(names)

	return &MetaJury{names: names, juries: juries, strategy: strategy}, nil
}

// Name returns the meta-jury's display name.
func (m *MetaJury) Name() string { return m.name }

// Vote runs every sub-jury concurrently, then aggregates their aggregated
// judgments with the outer strategy. Sub-jury vote errors are contract
// violations (bad strategy input), not evaluation failures, so the first
// one aborts the vote and propagates.
func (m *MetaJury) Vote(ctx context.Context, jc domain.JudgmentContext) (domain.Verdict, error) {
	verdicts := make([]domain.Verdict, len(m.juries))

	g, gctx := errgroup.WithContext(ctx)
	for i, sub := range m.juries {
		i, sub := i, sub
		g.Go(func() error {
			v, err := sub.Vote(gctx, jc)
			if err != nil {
				return fmt.Errorf("sub-jury %s: %w", m.names[i], err)
			}
			verdicts[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Verdict{}, err
	}

	named := make([]domain.NamedJudgment, len(verdicts))
	for i, v := range verdicts {
		named[i] = domain.NamedJudgment{Name: m.names[i], Judgment: v.Aggregated}
	}

	aggregated, err := m.strategy.Aggregate(named, nil)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("aggregate with %s: %w", m.strategy.Name(), err)
	}

	return domain.NewVerdict(aggregated, named, verdicts), nil
}
