package jury

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthropics/agentic-jury/internal/domain"
	"github.com/anthropics/agentic-jury/internal/voting"
)

func TestFromJudges(t *testing.T) {
	j, err := FromJudges(voting.Majority{}, passingJudge("a"), failingJudge("b"), passingJudge("c"))
	require.NoError(t, err)

	v, err := j.Vote(context.Background(), domain.JudgmentContext{})
	require.NoError(t, err)
	assert.True(t, v.Pass())
	assert.Equal(t, []string{"a", "b", "c"}, v.Names())
}

func TestCombine(t *testing.T) {
	a := mustSimpleJury(t, "a", passingJudge("x"))
	b := mustSimpleJury(t, "b", failingJudge("y"))

	t.Run("combines two juries", func(t *testing.T) {
		meta, err := Combine(a, b, voting.Majority{Ties: voting.TiePass})
		require.NoError(t, err)

		v, err := meta.Vote(context.Background(), domain.JudgmentContext{})
		require.NoError(t, err)
		assert.True(t, v.Pass())
		assert.Len(t, v.SubVerdicts, 2)
	})

	t.Run("rejects nil juries", func(t *testing.T) {
		_, err := Combine(a, nil, voting.Majority{})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)

		_, err = Combine(nil, b, voting.Majority{})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestAllOf(t *testing.T) {
	juries := []Jury{
		mustSimpleJury(t, "one", passingJudge("a")),
		mustSimpleJury(t, "two", passingJudge("b")),
		mustSimpleJury(t, "three", failingJudge("c")),
	}

	meta, err := AllOf(voting.Majority{}, juries...)
	require.NoError(t, err)

	v, err := meta.Vote(context.Background(), domain.JudgmentContext{})
	require.NoError(t, err)
	assert.True(t, v.Pass())
	assert.Equal(t, []string{"one", "two", "three"}, v.Names())
}

func TestAllOfRequiresJuries(t *testing.T) {
	_, err := AllOf(voting.Majority{})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
