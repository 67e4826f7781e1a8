package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthropics/agentic-jury/internal/domain"
)

func TestNew(t *testing.T) {
	for _, kind := range SupportedStrategies {
		t.Run(kind, func(t *testing.T) {
			s, err := New(kind, TieFail, ErrorsAsFail)
			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestNewPassesPoliciesToMajority(t *testing.T) {
	s, err := New("majority", TieAbstain, ErrorsIgnore)
	require.NoError(t, err)

	m, ok := s.(Majority)
	require.True(t, ok)
	assert.Equal(t, TieAbstain, m.Ties)
	assert.Equal(t, ErrorsIgnore, m.Errors)
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New("plurality", TieFail, ErrorsAsFail)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "plurality")
}
