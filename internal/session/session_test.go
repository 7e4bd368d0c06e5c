package session_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/models"
	"github.com/Lyn1194/hsk1-app/internal/session"
)

func wordPool(translations ...string) *session.Pool {
	items := make([]session.Item, len(translations))
	for i, tr := range translations {
		w := models.Word{
			ID:          fmt.Sprintf("w%02d", i+1),
			Level:       1,
			Chinese:     fmt.Sprintf("字%d", i+1),
			Pinyin:      fmt.Sprintf("zì%d", i+1),
			Translation: tr,
		}
		items[i] = session.Item{Word: &w}
	}
	return &session.Pool{Scope: session.ScopeLevel(1), Items: items}
}

func sentencePool(n int) *session.Pool {
	items := make([]session.Item, n)
	for i := range items {
		s := models.Sentence{
			Difficulty: models.DifficultyEasy,
			Prompt:     fmt.Sprintf("Say sentence %d", i+1),
			Accepted:   []string{fmt.Sprintf("ju zi %d", i+1)},
		}
		items[i] = session.Item{Sentence: &s}
	}
	return &session.Pool{Scope: session.ScopeDifficulty(models.DifficultyEasy), Items: items}
}

func newSession(t *testing.T, pool *session.Pool, mode models.Mode, seed int64) *session.Session {
	t.Helper()
	s, err := session.New(pool, session.Config{
		Mode: mode,
		Rand: rand.New(rand.NewSource(seed)),
	})
	require.NoError(t, err)
	return s
}

func TestNew_EmptyPool(t *testing.T) {
	_, err := session.New(&session.Pool{}, session.Config{Mode: models.ModeFlashcard})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeEmptyPool, appErr.Code)
}

func TestNew_InvalidMode(t *testing.T) {
	_, err := session.New(wordPool("cat"), session.Config{Mode: "marathon"})
	require.Error(t, err)
}

func TestNew_CoversEveryItemExactlyOnce(t *testing.T) {
	pool := wordPool("one", "two", "three", "four", "five", "six")
	s := newSession(t, pool, models.ModeFlashcard, 11)

	seen := make(map[string]bool)
	for {
		snap := s.Snapshot()
		require.NotNil(t, snap.Prompt)
		assert.False(t, seen[snap.Prompt.Translation], "item %q shown twice", snap.Prompt.Translation)
		seen[snap.Prompt.Translation] = true
		if snap.Position == snap.Total-1 {
			break
		}
		require.NoError(t, s.Advance())
	}
	assert.Len(t, seen, len(pool.Items))
}

func TestSubmit_AnswerOnce(t *testing.T) {
	s := newSession(t, wordPool("cat", "dog"), models.ModeFlashcard, 1)

	correct, err := s.Submit(session.Answer{SelfCorrect: true})
	require.NoError(t, err)
	assert.True(t, correct)

	// Re-submitting the same position is a no-op returning the recorded
	// verdict; counters stay put.
	correct, err = s.Submit(session.Answer{SelfCorrect: false})
	require.NoError(t, err)
	assert.True(t, correct)

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Correct)
	assert.Equal(t, 0, snap.Incorrect)
	assert.True(t, snap.Answered)
	require.NotNil(t, snap.WasCorrect)
	assert.True(t, *snap.WasCorrect)
}

func TestFlashcardSelfAssessment_NotCountedAsLearned(t *testing.T) {
	s := newSession(t, wordPool("cat", "dog"), models.ModeFlashcard, 1)

	for !s.Finished() {
		correct, err := s.Submit(session.Answer{SelfCorrect: true})
		require.NoError(t, err)
		assert.True(t, correct)
		require.NoError(t, s.Advance())
	}

	outcome, err := s.Outcome()
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Correct)
	assert.Empty(t, outcome.LearnedWordIDs, "self-assessed flips must not mark words learned")
}

func TestAdvance_ResetsAnsweredLatch(t *testing.T) {
	s := newSession(t, wordPool("cat", "dog"), models.ModeFlashcard, 1)

	_, err := s.Submit(session.Answer{SelfCorrect: false})
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	snap := s.Snapshot()
	assert.False(t, snap.Answered)
	assert.Nil(t, snap.WasCorrect)

	correct, err := s.Submit(session.Answer{SelfCorrect: true})
	require.NoError(t, err)
	assert.True(t, correct)
}

func TestAdvance_TerminatesAndFreezesPosition(t *testing.T) {
	translations := make([]string, 15)
	for i := range translations {
		translations[i] = fmt.Sprintf("word-%d", i+1)
	}
	s := newSession(t, wordPool(translations...), models.ModeFlashcard, 5)

	for i := 0; i < 14; i++ {
		require.NoError(t, s.Advance())
		assert.False(t, s.Finished())
	}
	assert.Equal(t, 14, s.Snapshot().Position)

	// Advancing off the last position is the terminal transition.
	require.NoError(t, s.Advance())
	assert.True(t, s.Finished())
	assert.Equal(t, 14, s.Snapshot().Position)

	err := s.Advance()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeSessionClosed, appErr.Code)

	_, err = s.Submit(session.Answer{SelfCorrect: true})
	require.Error(t, err)
	require.Error(t, s.Retreat())
	require.Error(t, s.Reshuffle())
}

func TestRetreat_FlashcardOnly(t *testing.T) {
	s := newSession(t, wordPool("cat", "dog", "bird"), models.ModeFlashcard, 2)

	// At the first card there is nothing to step back to.
	require.NoError(t, s.Retreat())
	assert.Equal(t, 0, s.Snapshot().Position)

	require.NoError(t, s.Advance())
	require.NoError(t, s.Advance())
	require.NoError(t, s.Retreat())
	assert.Equal(t, 1, s.Snapshot().Position)

	quiz := newSession(t, wordPool("cat", "dog", "bird", "fish"), models.ModeQuiz, 2)
	require.NoError(t, quiz.Advance())
	require.NoError(t, quiz.Retreat())
	assert.Equal(t, 1, quiz.Snapshot().Position, "retreat outside flashcard mode is a no-op")
}

func TestReshuffle_KeepsVisitedPrefix(t *testing.T) {
	pool := wordPool("one", "two", "three", "four", "five", "six", "seven", "eight")
	s := newSession(t, pool, models.ModeFlashcard, 13)

	first := s.Snapshot().Prompt.Translation
	require.NoError(t, s.Advance())
	second := s.Snapshot().Prompt.Translation

	require.NoError(t, s.Reshuffle())

	// The current card is untouched and stepping back replays the same
	// prefix.
	assert.Equal(t, second, s.Snapshot().Prompt.Translation)
	require.NoError(t, s.Retreat())
	assert.Equal(t, first, s.Snapshot().Prompt.Translation)

	// Full traversal still covers every item exactly once.
	require.NoError(t, s.Advance())
	seen := map[string]bool{first: true, second: true}
	for !s.Finished() {
		require.NoError(t, s.Advance())
		if !s.Finished() {
			seen[s.Snapshot().Prompt.Translation] = true
		}
	}
	assert.Len(t, seen, len(pool.Items))
}

func TestReshuffle_RejectedOutsideFlashcards(t *testing.T) {
	s := newSession(t, wordPool("cat", "dog", "bird", "fish"), models.ModeQuiz, 3)
	require.Error(t, s.Reshuffle())
}

func TestQuizSession_EndToEnd(t *testing.T) {
	pool := wordPool("cat", "dog", "bird", "fish")
	s := newSession(t, pool, models.ModeQuiz, 7)

	answered := 0
	for {
		snap := s.Snapshot()
		require.True(t, snap.Kind.MultipleChoice())
		require.Len(t, snap.Options, 4)
		require.Nil(t, snap.CorrectIndex, "answer key leaked before submission")

		correct, err := s.Submit(session.Answer{Choice: chooseCorrect(t, pool, snap)})
		require.NoError(t, err)
		assert.True(t, correct)
		answered++

		after := s.Snapshot()
		require.NotNil(t, after.CorrectIndex)
		assert.Equal(t, after.Options[*after.CorrectIndex], correctText(t, pool, snap))

		if err := s.Advance(); err != nil || s.Finished() {
			require.NoError(t, err)
			break
		}
	}
	require.Equal(t, 4, answered)

	outcome, err := s.Outcome()
	require.NoError(t, err)
	assert.Equal(t, models.ModeQuiz, outcome.Mode)
	assert.Equal(t, "level1", outcome.Scope)
	assert.Equal(t, 4, outcome.Correct)
	assert.Equal(t, 0, outcome.Incorrect)
	assert.Len(t, outcome.LearnedWordIDs, 4)
}

// correctText resolves the expected option text for a quiz snapshot by
// looking the prompted word up in the pool.
func correctText(t *testing.T, pool *session.Pool, snap models.SessionSnapshot) string {
	t.Helper()
	for _, item := range pool.Items {
		switch snap.Kind {
		case models.KindPickTranslation:
			if item.Word.Chinese == snap.Prompt.Chinese {
				return item.Word.Translation
			}
		case models.KindPickChinese:
			if item.Word.Translation == snap.Prompt.Translation {
				return item.Word.Chinese
			}
		}
	}
	t.Fatalf("prompt %+v not found in pool", snap.Prompt)
	return ""
}

func chooseCorrect(t *testing.T, pool *session.Pool, snap models.SessionSnapshot) int {
	t.Helper()
	want := correctText(t, pool, snap)
	for i, option := range snap.Options {
		if option == want {
			return i
		}
	}
	t.Fatalf("correct option %q not offered in %v", want, snap.Options)
	return -1
}

func TestQuizSession_WrongAndOutOfRangeChoice(t *testing.T) {
	pool := wordPool("cat", "dog", "bird", "fish")
	s := newSession(t, pool, models.ModeQuiz, 21)
	snap := s.Snapshot()

	_, err := s.Submit(session.Answer{Choice: 17})
	require.Error(t, err)
	assert.False(t, s.Snapshot().Answered, "rejected submission must not consume the attempt")

	wrong := (chooseCorrect(t, pool, snap) + 1) % len(snap.Options)
	correct, err := s.Submit(session.Answer{Choice: wrong})
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, 1, s.Snapshot().Incorrect)
}

func TestFinalSession_TypedPinyin(t *testing.T) {
	pool := wordPool("cat", "dog")
	s := newSession(t, pool, models.ModeFinal, 4)

	snap := s.Snapshot()
	require.Equal(t, models.KindTypedPinyin, snap.Kind)
	assert.Empty(t, snap.Options)
	assert.Empty(t, snap.Prompt.Pinyin, "pinyin is the answer and must stay hidden")

	var expected string
	for _, item := range pool.Items {
		if item.Word.Chinese == snap.Prompt.Chinese {
			expected = item.Word.Pinyin
		}
	}
	require.NotEmpty(t, expected)

	correct, err := s.Submit(session.Answer{Text: expected})
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, expected, s.Snapshot().Prompt.Pinyin, "answer revealed after scoring")
}

func TestBonusSession_TypedSentence(t *testing.T) {
	s := newSession(t, sentencePool(3), models.ModeBonus, 8)

	snap := s.Snapshot()
	require.Equal(t, models.KindTypedSentence, snap.Kind)
	require.NotNil(t, snap.Prompt)

	correct, err := s.Submit(session.Answer{Text: "gibberish"})
	require.NoError(t, err)
	assert.False(t, correct)

	require.NoError(t, s.Advance())
	correct, err = s.Submit(session.Answer{Text: ""})
	require.NoError(t, err)
	assert.False(t, correct, "blank input is never correct")
}

func TestOutcome_OnlyWhenFinished(t *testing.T) {
	s := newSession(t, wordPool("cat", "dog"), models.ModeFlashcard, 6)

	_, err := s.Outcome()
	require.Error(t, err)

	require.NoError(t, s.Advance())
	require.NoError(t, s.Advance())
	require.True(t, s.Finished())

	outcome, err := s.Outcome()
	require.NoError(t, err)
	assert.Equal(t, models.ModeFlashcard, outcome.Mode)
	assert.GreaterOrEqual(t, outcome.Duration, time.Duration(0))
}
