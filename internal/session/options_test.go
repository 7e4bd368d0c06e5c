package session_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/models"
	"github.com/Lyn1194/hsk1-app/internal/session"
)

func TestBuildOptions(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	candidates := []string{"cat", "dog", "bird", "fish", "horse", "cat"}

	for i := 0; i < 50; i++ {
		options, correctIndex, err := session.BuildOptions(rng, "cat", candidates, 4)
		require.NoError(t, err)
		require.Len(t, options, 4)

		seen := make(map[string]bool)
		correctCount := 0
		for _, o := range options {
			assert.False(t, seen[o.Text], "duplicate option %q", o.Text)
			seen[o.Text] = true
			if o.IsCorrect {
				correctCount++
			}
		}
		assert.Equal(t, 1, correctCount)
		require.GreaterOrEqual(t, correctIndex, 0)
		require.Less(t, correctIndex, 4)
		assert.Equal(t, "cat", options[correctIndex].Text)
		assert.True(t, options[correctIndex].IsCorrect)
	}
}

func TestBuildOptions_InsufficientCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Three distinct texts cannot fill four slots.
	_, _, err := session.BuildOptions(rng, "cat", []string{"dog", "dog", "bird"}, 4)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInsufficient, appErr.Code)
}

func TestBuildOptions_CorrectAlreadyAmongCandidates(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// "cat" appearing in the candidate list must not produce a duplicate.
	options, _, err := session.BuildOptions(rng, "cat", []string{"cat", "dog", "bird", "fish"}, 4)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, o := range options {
		assert.False(t, seen[o.Text])
		seen[o.Text] = true
	}
}

func TestFieldOptions(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	words := []models.Word{
		{Chinese: "猫", Translation: "cat"},
		{Chinese: "狗", Translation: "dog"},
		{Chinese: "鸟", Translation: "bird"},
		{Chinese: "鱼", Translation: "fish"},
	}

	options, correctIndex, err := session.FieldOptions(rng, words[0], words, session.Translation, 4)
	require.NoError(t, err)
	assert.Equal(t, "cat", options[correctIndex].Text)

	options, correctIndex, err = session.FieldOptions(rng, words[1], words, session.Headword, 4)
	require.NoError(t, err)
	assert.Equal(t, "狗", options[correctIndex].Text)
}
