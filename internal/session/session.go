// Package session implements the drill-session engine: question pools,
// traversal order, multiple-choice option generation, answer evaluation,
// and the per-session state machine shared by all four drill modes.
package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/models"
	"github.com/Lyn1194/hsk1-app/internal/random"
)

// State is the session lifecycle phase.
type State int

const (
	StateInProgress State = iota
	StateFinished
)

// Config tunes a new session.
type Config struct {
	Mode         models.Mode
	OptionCount  int  // options per multiple-choice question
	StrictPinyin bool // disable the folded-pinyin fallback
	Rand         *rand.Rand
	Clock        func() time.Time
}

// Answer is one submitted response; the field read depends on the current
// question kind.
type Answer struct {
	Choice      int    // multiple-choice option index
	Text        string // typed answer
	SelfCorrect bool   // flashcard self-assessment
}

// Session owns the full state of one drill run. It is not safe for
// concurrent use; the service layer serializes access per profile.
type Session struct {
	id    string
	mode  models.Mode
	pool  *Pool
	words []models.Word // candidate universe for option generation

	order []int                 // traversal permutation over pool indices
	kinds []models.QuestionKind // question kind per traversal position

	pos         int
	correct     int
	incorrect   int
	answered    bool
	lastCorrect bool
	state       State

	options      []Option
	correctIndex int

	learned map[string]bool // word ids answered correctly

	optionCount int
	strict      bool
	rng         *rand.Rand
	clock       func() time.Time
	startedAt   time.Time
}

// New starts a session over the pool: fresh traversal permutation,
// position zero, counters zeroed, options built when the first item is
// multiple-choice. The previous session for the same user, if any, is
// simply discarded by the caller.
func New(pool *Pool, cfg Config) (*Session, error) {
	if pool == nil || len(pool.Items) == 0 {
		return nil, errors.NewEmptyPoolError("session")
	}
	if !cfg.Mode.Valid() {
		return nil, errors.NewValidationError("mode", "must be flashcard, quiz, final, or bonus")
	}
	if cfg.OptionCount <= 0 {
		cfg.OptionCount = 4
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	s := &Session{
		id:           uuid.NewString(),
		mode:         cfg.Mode,
		pool:         pool,
		words:        pool.Words(),
		order:        random.Perm(cfg.Rand, len(pool.Items)),
		pos:          0,
		correctIndex: -1,
		learned:      make(map[string]bool),
		optionCount:  cfg.OptionCount,
		strict:       cfg.StrictPinyin,
		rng:          cfg.Rand,
		clock:        cfg.Clock,
	}
	s.startedAt = s.clock()

	s.kinds = make([]models.QuestionKind, len(s.order))
	for i := range s.kinds {
		s.kinds[i] = s.nextKind()
	}

	if err := s.prepare(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) nextKind() models.QuestionKind {
	switch s.mode {
	case models.ModeQuiz:
		// Quiz questions alternate direction at random.
		if s.rng.Intn(2) == 0 {
			return models.KindPickTranslation
		}
		return models.KindPickChinese
	case models.ModeFinal:
		return models.KindTypedPinyin
	case models.ModeBonus:
		return models.KindTypedSentence
	default:
		return models.KindFlashcard
	}
}

// ID returns the session instance id.
func (s *Session) ID() string { return s.id }

// Mode returns the drill mode.
func (s *Session) Mode() models.Mode { return s.mode }

// Finished reports whether the session reached its terminal state.
func (s *Session) Finished() bool { return s.state == StateFinished }

func (s *Session) item() Item {
	return s.pool.Items[s.order[s.pos]]
}

func (s *Session) kind() models.QuestionKind {
	return s.kinds[s.pos]
}

// prepare rebuilds per-question state for the current position.
func (s *Session) prepare() error {
	s.options = nil
	s.correctIndex = -1

	kind := s.kind()
	if !kind.MultipleChoice() {
		return nil
	}

	word := s.item().Word
	extract := Translation
	if kind == models.KindPickChinese {
		extract = Headword
	}
	options, correctIndex, err := FieldOptions(s.rng, *word, s.words, extract, s.optionCount)
	if err != nil {
		return err
	}
	s.options = options
	s.correctIndex = correctIndex
	return nil
}

// Submit scores the current question exactly once. A second call on the
// same position is a no-op returning the recorded verdict. Scoring never
// moves the position; call Advance for that.
func (s *Session) Submit(ans Answer) (bool, error) {
	if s.state == StateFinished {
		return false, errors.NewSessionClosedError("submit")
	}
	if s.answered {
		return s.lastCorrect, nil
	}

	var result bool
	switch kind := s.kind(); kind {
	case models.KindFlashcard:
		result = ans.SelfCorrect
	case models.KindPickTranslation, models.KindPickChinese:
		if ans.Choice < 0 || ans.Choice >= len(s.options) {
			return false, errors.NewValidationError("choice", "option index out of range")
		}
		result = EvaluateChoice(ans.Choice, s.correctIndex)
	case models.KindTypedPinyin:
		result = EvaluatePinyin(ans.Text, s.item().Word.Pinyin, s.strict)
	case models.KindTypedSentence:
		result = EvaluateSentence(ans.Text, s.item().Sentence.Accepted)
	}

	if result {
		s.correct++
		// Self-assessed flashcard flips don't prove recall; only
		// answer-keyed modes mark a word as learned.
		if w := s.item().Word; w != nil && s.kind() != models.KindFlashcard {
			s.learned[w.ID] = true
		}
	} else {
		s.incorrect++
	}
	s.answered = true
	s.lastCorrect = result
	return result, nil
}

// Advance moves to the next question, or transitions to Finished on the
// last one; the position freezes there. Further calls fail with
// SESSION_CLOSED.
func (s *Session) Advance() error {
	if s.state == StateFinished {
		return errors.NewSessionClosedError("advance")
	}
	if s.pos == len(s.order)-1 {
		s.state = StateFinished
		return nil
	}
	s.pos++
	s.answered = false
	s.lastCorrect = false
	return s.prepare()
}

// Retreat steps back one card. Backward navigation exists only in
// flashcard mode; elsewhere it is a no-op. Counters and the answered
// latch are untouched.
func (s *Session) Retreat() error {
	if s.state == StateFinished {
		return errors.NewSessionClosedError("retreat")
	}
	if s.mode != models.ModeFlashcard {
		return nil
	}
	if s.pos > 0 {
		s.pos--
	}
	return nil
}

// Reshuffle rerandomizes the unvisited remainder of the traversal order,
// keeping the current position and everything already seen. Flashcard
// mode only.
func (s *Session) Reshuffle() error {
	if s.state == StateFinished {
		return errors.NewSessionClosedError("reshuffle")
	}
	if s.mode != models.ModeFlashcard {
		return errors.NewValidationError("mode", "reshuffle is only available in flashcard mode")
	}
	random.Shuffle(s.rng, s.order[s.pos+1:])
	return nil
}

// Outcome returns the final tally. Only valid once Finished.
func (s *Session) Outcome() (*models.SessionOutcome, error) {
	if s.state != StateFinished {
		return nil, errors.NewValidationError("session", "session is still in progress")
	}

	learned := make([]string, 0, len(s.learned))
	for id := range s.learned {
		learned = append(learned, id)
	}

	return &models.SessionOutcome{
		Mode:           s.mode,
		Scope:          s.pool.Scope.String(),
		Level:          s.pool.Scope.Level,
		Correct:        s.correct,
		Incorrect:      s.incorrect,
		LearnedWordIDs: learned,
		Duration:       s.clock().Sub(s.startedAt),
	}, nil
}

// Snapshot emits the presentation surface for the current state. The UI
// renders it and never mutates engine state directly.
func (s *Session) Snapshot() models.SessionSnapshot {
	snap := models.SessionSnapshot{
		SessionID: s.id,
		Mode:      s.mode,
		Kind:      s.kind(),
		Position:  s.pos,
		Total:     len(s.order),
		Correct:   s.correct,
		Incorrect: s.incorrect,
		Answered:  s.answered,
		Finished:  s.state == StateFinished,
	}

	if snap.Finished {
		return snap
	}

	snap.Prompt = s.promptView()
	if len(s.options) > 0 {
		snap.Options = make([]string, len(s.options))
		for i, o := range s.options {
			snap.Options[i] = o.Text
		}
	}
	if s.answered {
		if s.correctIndex >= 0 {
			idx := s.correctIndex
			snap.CorrectIndex = &idx
		}
		was := s.lastCorrect
		snap.WasCorrect = &was
	}
	return snap
}

func (s *Session) promptView() *models.PromptView {
	item := s.item()

	if sent := item.Sentence; sent != nil {
		view := &models.PromptView{
			Prompt:    sent.Prompt,
			WordHints: sent.Words,
		}
		if s.answered {
			view.ExampleSentence = sent.Example
			view.ExamplePinyin = sent.ExamplePinyin
		}
		return view
	}

	word := item.Word
	switch s.kind() {
	case models.KindPickTranslation:
		return &models.PromptView{Chinese: word.Chinese, Pinyin: word.Pinyin}
	case models.KindPickChinese:
		return &models.PromptView{Translation: word.Translation}
	case models.KindTypedPinyin:
		view := &models.PromptView{Chinese: word.Chinese, Translation: word.Translation}
		if s.answered {
			view.Pinyin = word.Pinyin
		}
		return view
	default:
		return &models.PromptView{
			Chinese:            word.Chinese,
			Pinyin:             word.Pinyin,
			Translation:        word.Translation,
			ExampleSentence:    word.ExampleSentence,
			ExamplePinyin:      word.ExamplePinyin,
			ExampleTranslation: word.ExampleTranslation,
		}
	}
}
