package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthropics/agentic-jury/internal/domain"
)

func TestAverageAggregate(t *testing.T) {
	tests := []struct {
		name       string
		judgments  []domain.NamedJudgment
		wantStatus domain.Status
		wantMean   float64
	}{
		{
			name:       "mean above threshold passes",
			judgments:  []domain.NamedJudgment{scoreJ("a", 0.8), scoreJ("b", 0.7), scoreJ("c", 0.6)},
			wantStatus: domain.StatusPass,
			wantMean:   0.7,
		},
		{
			name:       "mean below threshold fails",
			judgments:  []domain.NamedJudgment{scoreJ("a", 0.2), scoreJ("b", 0.3), scoreJ("c", 0.4)},
			wantStatus: domain.StatusFail,
			wantMean:   0.3,
		},
		{
			name:       "threshold is inclusive",
			judgments:  []domain.NamedJudgment{scoreJ("a", 0.4), scoreJ("b", 0.6)},
			wantStatus: domain.StatusPass,
			wantMean:   0.5,
		},
		{
			name:       "missing score counts as zero",
			judgments:  []domain.NamedJudgment{scoreJ("a", 1.0), abstainJ("b")},
			wantStatus: domain.StatusPass,
			wantMean:   0.5,
		},
		{
			name:       "boolean scores normalize",
			judgments:  []domain.NamedJudgment{passJ("a"), passJ("b"), failJ("c")},
			wantStatus: domain.StatusPass,
			wantMean:   2.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Average{}.Aggregate(tt.judgments, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)

			score, ok := got.Score.(domain.NumericalScore)
			require.True(t, ok, "average should produce a numerical score")
			assert.InDelta(t, tt.wantMean, score.Value, 1e-9)
		})
	}
}

func TestAverageUnknownCategoryFailsFast(t *testing.T) {
	judgments := []domain.NamedJudgment{
		scoreJ("a", 0.9),
		{Name: "b", Judgment: domain.Judgment{
			Status: domain.StatusPass,
			Score:  domain.CategoricalScore{Value: "superb", Categories: map[string]float64{"good": 0.75}},
		}},
	}
	_, err := Average{}.Aggregate(judgments, nil)
	require.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.Contains(t, err.Error(), `"b"`)
}

func TestAverageEmptyInput(t *testing.T) {
	_, err := Average{}.Aggregate([]domain.NamedJudgment{}, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAverageIgnoresWeights(t *testing.T) {
	judgments := []domain.NamedJudgment{scoreJ("a", 1.0), scoreJ("b", 0.0)}
	weighted, err := Average{}.Aggregate(judgments, map[string]float64{"a": 100})
	require.NoError(t, err)
	unweighted, err := Average{}.Aggregate(judgments, nil)
	require.NoError(t, err)
	assert.Equal(t, unweighted, weighted)
}

func TestAverageName(t *testing.T) {
	assert.Equal(t, "AverageVoting", Average{}.Name())
}
