package models

import "fmt"

// Level is the ordinal grouping of the vocabulary catalog (1..LevelCount).
type Level int

// LevelCount is the number of vocabulary levels in the catalog.
const LevelCount = 10

// Valid reports whether the level is within the catalog range.
func (l Level) Valid() bool {
	return l >= 1 && l <= LevelCount
}

// Key returns the persisted map key for the level ("level1".."level10").
func (l Level) Key() string {
	return fmt.Sprintf("level%d", int(l))
}

// Difficulty groups sentence templates for bonus exams.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all sentence difficulties in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Word is one immutable vocabulary record.
type Word struct {
	ID                 string `json:"id"`
	Level              Level  `json:"level"`
	Chinese            string `json:"chinese"`
	Pinyin             string `json:"pinyin"`
	Translation        string `json:"translation"`
	ExampleSentence    string `json:"example_sentence"`
	ExamplePinyin      string `json:"example_pinyin"`
	ExampleTranslation string `json:"example_translation"`
}

// SentenceWord is a vocabulary hint shown with a sentence prompt.
type SentenceWord struct {
	Chinese string `json:"chinese"`
	Pinyin  string `json:"pinyin"`
}

// Sentence is one immutable sentence-construction template.
type Sentence struct {
	Difficulty    Difficulty     `json:"difficulty"`
	Prompt        string         `json:"prompt"`
	Words         []SentenceWord `json:"words"`
	Example       string         `json:"example"`
	ExamplePinyin string         `json:"example_pinyin"`
	Accepted      []string       `json:"accepted"`
}
