package jury

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/anthropics/agentic-jury/internal/domain"
	"github.com/anthropics/agentic-jury/internal/voting"
)

// Config holds optional SimpleJury settings.
type Config struct {
	// Name is the jury's display name (used when nested in a MetaJury).
	Name string
	// Weights maps judge names to voting weights for weight-aware
	// strategies. Judges absent from the map carry weight 1.0.
	Weights map[string]float64
	// Concurrency bounds how many judges evaluate at once.
	// <= 0 runs all judges concurrently; 1 is strictly sequential.
	Concurrency int
	// Completed, when set, is incremented as each judge finishes.
	// Progress displays hook in here.
	Completed *atomic.Int32
}

// SimpleJury runs a fixed set of judges against a shared context and
// aggregates their judgments with one strategy. Judges and configuration
// are owned at construction and never mutated afterward.
type SimpleJury struct {
	name      string
	names     []string
	judges    []Judge
	strategy  voting.Strategy
	weights   map[string]float64
	limit     int
	completed *atomic.Int32
}

// NewSimpleJury creates a jury over the given judges. Judge display names
// are resolved once here: explicit names are kept, anonymous judges become
// "Judge#<position>", and collisions get -2, -3, … suffixes.
func NewSimpleJury(strategy voting.Strategy, cfg Config, judges ...Judge) (*SimpleJury, error) {
	if strategy == nil {
		return nil, fmt.Errorf("%w: strategy is required", domain.ErrInvalidArgument)
	}
	if len(judges) == 0 {
		return nil, fmt.Errorf("%w: at least one judge is required", domain.ErrInvalidArgument)
	}

	names := make([]string, len(judges))
	for i, judge := range judges {
		if judge == nil {
			return nil, fmt.Errorf("%w: judge %d is nil", domain.ErrInvalidArgument, i+1)
		}
		names[i] = displayName(judge, "Judge", i+1)
	}
	names = domain.DedupeNames(names)

	return &SimpleJury{
		name:      cfg.Name,
		names:     names,
		judges:    judges,
		strategy:  strategy,
		weights:   cfg.Weights,
		limit:     cfg.Concurrency,
		completed: cfg.Completed,
	}, nil
}

// Name returns the jury's display name.
func (j *SimpleJury) Name() string { return j.name }

// JudgeNames returns the resolved judge names in configured order.
func (j *SimpleJury) JudgeNames() []string {
	names := make([]string, len(j.names))
	copy(names, j.names)
	return names
}

// Vote evaluates every judge against jc and aggregates the judgments.
// Judges run concurrently up to the configured limit; there is no ordering
// guarantee during execution, but results are reassembled in configured
// judge order. A judge that errors, panics, or is cut off by ctx surfaces
// as an error-status judgment rather than aborting the vote.
func (j *SimpleJury) Vote(ctx context.Context, jc domain.JudgmentContext) (domain.Verdict, error) {
	type indexed struct {
		idx      int
		judgment domain.Judgment
	}

	limit := j.limit
	if limit <= 0 {
		limit = len(j.judges)
	}
	sem := make(chan struct{}, limit)
	resultCh := make(chan indexed, len(j.judges))

	for i, judge := range j.judges {
		go func(idx int, judge Judge) {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				resultCh <- indexed{idx, domain.NewError(ctx.Err())}
				return
			}
			judgment := evaluate(ctx, judge, jc)
			<-sem
			resultCh <- indexed{idx, judgment}
		}(i, judge)
	}

	// Join barrier: aggregation only begins once every judge reported.
	named := make([]domain.NamedJudgment, len(j.judges))
	for range j.judges {
		r := <-resultCh
		named[r.idx] = domain.NamedJudgment{Name: j.names[r.idx], Judgment: r.judgment}
		if j.completed != nil {
			j.completed.Add(1)
		}
	}

	aggregated, err := j.strategy.Aggregate(named, j.weights)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("aggregate with %s: %w", j.strategy.Name(), err)
	}

	return domain.NewVerdict(aggregated, named, nil), nil
}
