package models

import "time"

// Mode identifies one of the four drill modes.
type Mode string

const (
	ModeFlashcard Mode = "flashcard"
	ModeQuiz      Mode = "quiz"
	ModeFinal     Mode = "final"
	ModeBonus     Mode = "bonus"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeFlashcard, ModeQuiz, ModeFinal, ModeBonus:
		return true
	}
	return false
}

// QuestionKind identifies how the current item is asked and answered.
type QuestionKind string

const (
	KindFlashcard       QuestionKind = "flashcard"
	KindPickTranslation QuestionKind = "pick_translation"
	KindPickChinese     QuestionKind = "pick_chinese"
	KindTypedPinyin     QuestionKind = "typed_pinyin"
	KindTypedSentence   QuestionKind = "typed_sentence"
)

// MultipleChoice reports whether the kind is answered by option index.
func (k QuestionKind) MultipleChoice() bool {
	return k == KindPickTranslation || k == KindPickChinese
}

// Typed reports whether the kind is answered by free text.
func (k QuestionKind) Typed() bool {
	return k == KindTypedPinyin || k == KindTypedSentence
}

// PromptView is the prompt data the UI renders for the current item.
// Only the fields relevant to the question kind are populated.
type PromptView struct {
	Chinese            string         `json:"chinese,omitempty"`
	Pinyin             string         `json:"pinyin,omitempty"`
	Translation        string         `json:"translation,omitempty"`
	ExampleSentence    string         `json:"example_sentence,omitempty"`
	ExamplePinyin      string         `json:"example_pinyin,omitempty"`
	ExampleTranslation string         `json:"example_translation,omitempty"`
	Prompt             string         `json:"prompt,omitempty"`
	WordHints          []SentenceWord `json:"word_hints,omitempty"`
}

// SessionSnapshot is the one-directional presentation surface emitted on
// every session-state transition. The UI never mutates it.
type SessionSnapshot struct {
	SessionID    string       `json:"session_id"`
	Mode         Mode         `json:"mode"`
	Kind         QuestionKind `json:"kind"`
	Prompt       *PromptView  `json:"prompt,omitempty"`
	Options      []string     `json:"options,omitempty"`
	CorrectIndex *int         `json:"correct_index,omitempty"` // revealed once answered
	WasCorrect   *bool        `json:"was_correct,omitempty"`   // revealed once answered
	Position     int          `json:"position"`
	Total        int          `json:"total"`
	Correct      int          `json:"correct"`
	Incorrect    int          `json:"incorrect"`
	Answered     bool         `json:"answered"`
	Finished     bool         `json:"finished"`
}

// SessionOutcome is the final tally of a finished session, the only write
// input the statistics aggregator accepts.
type SessionOutcome struct {
	Mode           Mode
	Scope          string // "level3", "all", "easy", ...
	Level          Level  // 0 when the scope is not a single level
	Correct        int
	Incorrect      int
	LearnedWordIDs []string
	Duration       time.Duration
}

// SessionResult is one persisted row of completed-session history.
type SessionResult struct {
	ID              int64     `json:"id"`
	ProfileID       int64     `json:"profile_id"`
	Mode            Mode      `json:"mode"`
	Scope           string    `json:"scope"`
	Correct         int       `json:"correct"`
	Incorrect       int       `json:"incorrect"`
	DurationSeconds float64   `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

// SessionResultFilter narrows history listings.
type SessionResultFilter struct {
	ProfileID int64
	Mode      Mode
	Scope     string
	Limit     int
	Offset    int
}
