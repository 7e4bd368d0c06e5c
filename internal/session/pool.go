package session

import (
	"fmt"

	"github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/models"
	"github.com/Lyn1194/hsk1-app/internal/vocab"
)

// Item is one drillable source record: a word or a sentence template,
// never both.
type Item struct {
	Word     *models.Word
	Sentence *models.Sentence
}

// Scope selects the content slice a session drills: a single level, the
// full catalog, or one sentence difficulty.
type Scope struct {
	Level      models.Level
	All        bool
	Difficulty models.Difficulty
}

// ScopeLevel scopes a session to one vocabulary level.
func ScopeLevel(level models.Level) Scope {
	return Scope{Level: level}
}

// ScopeAll scopes a session to the full catalog.
func ScopeAll() Scope {
	return Scope{All: true}
}

// ScopeDifficulty scopes a session to one sentence difficulty bucket.
func ScopeDifficulty(d models.Difficulty) Scope {
	return Scope{Difficulty: d}
}

func (s Scope) String() string {
	switch {
	case s.All:
		return "all"
	case s.Difficulty != "":
		return string(s.Difficulty)
	case s.Level > 0:
		return s.Level.Key()
	}
	return "empty"
}

// Pool is the finite ordered set of items selected for one session,
// in canonical catalog order. Traversal order lives on the Session.
type Pool struct {
	Scope Scope
	Items []Item
}

// Words returns the word records of the pool, nil for sentence pools.
func (p *Pool) Words() []models.Word {
	words := make([]models.Word, 0, len(p.Items))
	for _, item := range p.Items {
		if item.Word != nil {
			words = append(words, *item.Word)
		}
	}
	if len(words) == 0 {
		return nil
	}
	return words
}

// BuildPool resolves a scope against the catalog. Fails with EMPTY_POOL
// when the resolved scope has zero items; callers must not start a session
// on an empty pool.
func BuildPool(catalog *vocab.Catalog, scope Scope) (*Pool, error) {
	var items []Item

	switch {
	case scope.All:
		for _, w := range catalog.AllWords() {
			w := w
			items = append(items, Item{Word: &w})
		}
	case scope.Difficulty != "":
		sentences, err := catalog.Sentences(scope.Difficulty)
		if err != nil {
			return nil, err
		}
		for _, s := range sentences {
			s := s
			items = append(items, Item{Sentence: &s})
		}
	case scope.Level > 0:
		words, err := catalog.Words(scope.Level)
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			w := w
			items = append(items, Item{Word: &w})
		}
	default:
		return nil, errors.NewValidationError("scope", fmt.Sprintf("unresolvable scope %+v", scope))
	}

	if len(items) == 0 {
		return nil, errors.NewEmptyPoolError(scope.String())
	}

	return &Pool{Scope: scope, Items: items}, nil
}
