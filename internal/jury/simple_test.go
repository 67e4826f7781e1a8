package jury

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthropics/agentic-jury/internal/domain"
	"github.com/anthropics/agentic-jury/internal/voting"
)

// namedJudge is a test judge with an explicit name and fixed judgment.
type namedJudge struct {
	name     string
	judgment domain.Judgment
	err      error
}

func (j namedJudge) Name() string { return j.name }

func (j namedJudge) Judge(_ context.Context, _ domain.JudgmentContext) (domain.Judgment, error) {
	return j.judgment, j.err
}

// slowJudge passes after a fixed delay.
type slowJudge struct {
	name  string
	delay time.Duration
}

func (j slowJudge) Name() string { return j.name }

func (j slowJudge) Judge(_ context.Context, _ domain.JudgmentContext) (domain.Judgment, error) {
	time.Sleep(j.delay)
	return domain.NewPass(domain.BooleanScore{Value: true}, "ok"), nil
}

func passingJudge(name string) namedJudge {
	return namedJudge{name: name, judgment: domain.NewPass(domain.BooleanScore{Value: true}, "ok")}
}

func failingJudge(name string) namedJudge {
	return namedJudge{name: name, judgment: domain.NewFail(domain.BooleanScore{Value: false}, "nope")}
}

func TestNewSimpleJuryValidation(t *testing.T) {
	t.Run("nil strategy", func(t *testing.T) {
		_, err := NewSimpleJury(nil, Config{}, passingJudge("a"))
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "strategy")
	})

	t.Run("no judges", func(t *testing.T) {
		_, err := NewSimpleJury(voting.Majority{}, Config{})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "at least one judge")
	})

	t.Run("nil judge", func(t *testing.T) {
		_, err := NewSimpleJury(voting.Majority{}, Config{}, passingJudge("a"), nil)
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "judge 2")
	})
}

func TestSimpleJuryVote(t *testing.T) {
	j, err := NewSimpleJury(voting.Majority{}, Config{},
		passingJudge("lint"), passingJudge("tests"), failingJudge("docs"))
	require.NoError(t, err)

	v, err := j.Vote(context.Background(), domain.JudgmentContext{})
	require.NoError(t, err)

	assert.True(t, v.Pass())
	assert.Equal(t, []string{"lint", "tests", "docs"}, v.Names())
	assert.NotEmpty(t, v.ID)
	assert.Empty(t, v.SubVerdicts)

	docs, ok := v.ByName("docs")
	require.True(t, ok)
	assert.Equal(t, domain.StatusFail, docs.Status)
}

func TestSimpleJuryAnonymousAndDuplicateNames(t *testing.T) {
	anonymous := JudgeFunc(func(_ context.Context, _ domain.JudgmentContext) (domain.Judgment, error) {
		return domain.NewPass(domain.BooleanScore{Value: true}, "ok"), nil
	})

	j, err := NewSimpleJury(voting.Majority{}, Config{},
		passingJudge("FileCheck"), passingJudge("FileCheck"), passingJudge("FileCheck"), anonymous)
	require.NoError(t, err)

	v, err := j.Vote(context.Background(), domain.JudgmentContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"FileCheck", "FileCheck-2", "FileCheck-3", "Judge#4"}, v.Names())

	// Each deduped name maps back to its own judgment.
	for _, name := range v.Names() {
		_, ok := v.ByName(name)
		assert.True(t, ok, "missing judgment for %s", name)
	}
}

func TestSimpleJuryErroringJudgeBecomesErrorJudgment(t *testing.T) {
	broken := namedJudge{name: "broken", err: errors.New("binary not found")}

	j, err := NewSimpleJury(voting.Majority{}, Config{}, passingJudge("good"), broken)
	require.NoError(t, err)

	v, err := j.Vote(context.Background(), domain.JudgmentContext{})
	require.NoError(t, err, "a failing judge must not abort the vote")

	got, ok := v.ByName("broken")
	require.True(t, ok)
	assert.Equal(t, domain.StatusError, got.Status)
	assert.Contains(t, got.Reasoning, "binary not found")
}

func TestSimpleJuryPanickingJudgeBecomesErrorJudgment(t *testing.T) {
	panicky := JudgeFunc(func(_ context.Context, _ domain.JudgmentContext) (domain.Judgment, error) {
		panic("boom")
	})

	j, err := NewSimpleJury(voting.Majority{Errors: voting.ErrorsIgnore}, Config{},
		passingJudge("good"), panicky)
	require.NoError(t, err)

	v, err := j.Vote(context.Background(), domain.JudgmentContext{})
	require.NoError(t, err)
	assert.True(t, v.Pass())

	got, ok := v.ByName("Judge#2")
	require.True(t, ok)
	assert.Equal(t, domain.StatusError, got.Status)
	assert.Contains(t, got.Reasoning, "boom")
}

func TestSimpleJuryConcurrencyLimit(t *testing.T) {
	var active, peak atomic.Int32

	slow := JudgeFunc(func(_ context.Context, _ domain.JudgmentContext) (domain.Judgment, error) {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		active.Add(-1)
		return domain.NewPass(domain.BooleanScore{Value: true}, "ok"), nil
	})

	j, err := NewSimpleJury(voting.Majority{}, Config{Concurrency: 2}, slow, slow, slow, slow, slow)
	require.NoError(t, err)

	_, err = j.Vote(context.Background(), domain.JudgmentContext{})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestSimpleJuryResultsInConfiguredOrder(t *testing.T) {
	mk := func(name string, delay time.Duration) Judge {
		return slowJudge{name: name, delay: delay}
	}
	// Reverse delays: the first judge finishes last.
	j, err := NewSimpleJury(voting.Majority{}, Config{},
		mk("first", 30*time.Millisecond), mk("second", 10*time.Millisecond), mk("third", 0))
	require.NoError(t, err)

	v, err := j.Vote(context.Background(), domain.JudgmentContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, v.Names())
}

func TestSimpleJuryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocked := JudgeFunc(func(ctx context.Context, _ domain.JudgmentContext) (domain.Judgment, error) {
		<-ctx.Done()
		return domain.Judgment{}, ctx.Err()
	})

	j, err := NewSimpleJury(voting.Majority{}, Config{Concurrency: 1}, blocked, blocked)
	require.NoError(t, err)

	v, err := j.Vote(ctx, domain.JudgmentContext{})
	require.NoError(t, err)
	for _, nj := range v.Individual {
		assert.Equal(t, domain.StatusError, nj.Judgment.Status)
	}
}

func TestSimpleJuryCompletedCounter(t *testing.T) {
	var completed atomic.Int32
	j, err := NewSimpleJury(voting.Majority{}, Config{Completed: &completed},
		passingJudge("a"), passingJudge("b"), passingJudge("c"))
	require.NoError(t, err)

	_, err = j.Vote(context.Background(), domain.JudgmentContext{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), completed.Load())
}

func TestSimpleJuryWeightsReachStrategy(t *testing.T) {
	score := func(name string, v float64) namedJudge {
		status := domain.StatusPass
		if v < 0.5 {
			status = domain.StatusFail
		}
		return namedJudge{name: name, judgment: domain.Judgment{
			Status: status,
			Score:  domain.NumericalScore{Value: v, Min: 0, Max: 1},
		}}
	}

	j, err := NewSimpleJury(voting.WeightedAverage{},
		Config{Weights: map[string]float64{"senior": 9, "junior": 1}},
		score("senior", 0.9), score("junior", 0.1))
	require.NoError(t, err)

	v, err := j.Vote(context.Background(), domain.JudgmentContext{})
	require.NoError(t, err)
	require.True(t, v.Pass())

	agg, ok := v.Aggregated.Score.(domain.NumericalScore)
	require.True(t, ok)
	assert.InDelta(t, 0.82, agg.Value, 1e-9)
}

func TestSimpleJuryAggregateErrorPropagates(t *testing.T) {
	bad := namedJudge{name: "cat", judgment: domain.Judgment{
		Status: domain.StatusPass,
		Score:  domain.CategoricalScore{Value: "superb", Categories: map[string]float64{"good": 1}},
	}}

	j, err := NewSimpleJury(voting.Average{}, Config{}, bad)
	require.NoError(t, err)

	_, err = j.Vote(context.Background(), domain.JudgmentContext{})
	require.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.Contains(t, err.Error(), "aggregate with AverageVoting")
}

func TestSimpleJuryJudgeNamesCopies(t *testing.T) {
	j, err := NewSimpleJury(voting.Majority{}, Config{}, passingJudge("a"), passingJudge("b"))
	require.NoError(t, err)

	names := j.JudgeNames()
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, j.JudgeNames())
}
