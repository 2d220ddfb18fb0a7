package survey_test

import (
	"testing"

	"assessment-portal-backend/internal/survey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	questions, err := survey.LoadCatalog()
	require.NoError(t, err)
	require.Len(t, questions, 8)

	assert.Equal(t, "question1_speed", questions[0].Field)
	assert.Equal(t, "question8_improvements", questions[7].Field)

	for _, q := range questions {
		assert.NotEmpty(t, q.Field)
		assert.NotEmpty(t, q.Label)
	}
}
