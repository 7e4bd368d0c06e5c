// Package vocab is the immutable content store: the level-grouped word
// catalog and the difficulty-grouped sentence templates, embedded at build
// time. Loaded once at startup; everything returned from a Catalog is
// read-only.
package vocab

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/models"
)

//go:embed data/vocabulary.json data/sentences.json
var dataFS embed.FS

type Catalog struct {
	levels    map[models.Level][]models.Word
	sentences map[models.Difficulty][]models.Sentence
	all       []models.Word
	byID      map[string]models.Word
}

// Load parses the embedded dataset and validates its shape.
func Load() (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/vocabulary.json")
	if err != nil {
		return nil, fmt.Errorf("read vocabulary data: %w", err)
	}

	var byKey map[string][]models.Word
	if err := json.Unmarshal(raw, &byKey); err != nil {
		return nil, fmt.Errorf("parse vocabulary data: %w", err)
	}

	c := &Catalog{
		levels:    make(map[models.Level][]models.Word, models.LevelCount),
		sentences: make(map[models.Difficulty][]models.Sentence),
		byID:      make(map[string]models.Word),
	}

	for lvl := models.Level(1); lvl <= models.LevelCount; lvl++ {
		words, ok := byKey[lvl.Key()]
		if !ok || len(words) == 0 {
			return nil, fmt.Errorf("vocabulary data has no words for %s", lvl.Key())
		}
		for i := range words {
			words[i].Level = lvl
			if words[i].ID == "" {
				return nil, fmt.Errorf("%s word %d has no id", lvl.Key(), i)
			}
			if _, dup := c.byID[words[i].ID]; dup {
				return nil, fmt.Errorf("duplicate word id %q", words[i].ID)
			}
			c.byID[words[i].ID] = words[i]
		}
		c.levels[lvl] = words
		c.all = append(c.all, words...)
	}

	raw, err = dataFS.ReadFile("data/sentences.json")
	if err != nil {
		return nil, fmt.Errorf("read sentence data: %w", err)
	}

	var byDifficulty map[models.Difficulty][]models.Sentence
	if err := json.Unmarshal(raw, &byDifficulty); err != nil {
		return nil, fmt.Errorf("parse sentence data: %w", err)
	}

	for _, d := range models.Difficulties() {
		templates := byDifficulty[d]
		if len(templates) == 0 {
			return nil, fmt.Errorf("sentence data has no templates for difficulty %q", d)
		}
		for i := range templates {
			templates[i].Difficulty = d
			if len(templates[i].Accepted) == 0 {
				return nil, fmt.Errorf("difficulty %q template %d has no accepted answers", d, i)
			}
		}
		c.sentences[d] = templates
	}

	return c, nil
}

// Levels returns all level ids in ascending order.
func (c *Catalog) Levels() []models.Level {
	levels := make([]models.Level, 0, models.LevelCount)
	for lvl := models.Level(1); lvl <= models.LevelCount; lvl++ {
		levels = append(levels, lvl)
	}
	return levels
}

// Words returns the catalog-ordered words of one level.
func (c *Catalog) Words(level models.Level) ([]models.Word, error) {
	if !level.Valid() {
		return nil, errors.NewValidationError("level", fmt.Sprintf("must be between 1 and %d", models.LevelCount))
	}
	return c.levels[level], nil
}

// AllWords returns every word, levels concatenated in ascending order.
func (c *Catalog) AllWords() []models.Word {
	return c.all
}

// WordByID looks up one word by its stable id.
func (c *Catalog) WordByID(id string) (models.Word, bool) {
	w, ok := c.byID[id]
	return w, ok
}

// Sentences returns the sentence templates of one difficulty.
func (c *Catalog) Sentences(difficulty models.Difficulty) ([]models.Sentence, error) {
	if !difficulty.Valid() {
		return nil, errors.NewValidationError("difficulty", "must be easy, medium, or hard")
	}
	return c.sentences[difficulty], nil
}

// WordOfDay returns the deterministic word of the day: day-of-year modulo
// catalog size, so every user sees the same word on the same date.
func (c *Catalog) WordOfDay(t time.Time) models.Word {
	return c.all[t.YearDay()%len(c.all)]
}
