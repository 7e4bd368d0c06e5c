package session

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/models"
	"github.com/Lyn1194/hsk1-app/internal/random"
)

// Option is one multiple-choice entry. Exactly one option per question
// carries IsCorrect.
type Option struct {
	Text      string
	IsCorrect bool
}

// Field extracts the option text from a candidate word. The same
// generator serves "pick the translation" and "pick the headword"
// questions; only the extracted field differs.
type Field func(models.Word) string

// Translation extracts the translation field.
func Translation(w models.Word) string { return w.Translation }

// Headword extracts the target-language headword.
func Headword(w models.Word) string { return w.Chinese }

// BuildOptions produces k unique options including the correct answer at a
// random position, drawing distractors uniformly from candidates. Fails
// with INSUFFICIENT_CANDIDATES when the distinct-candidate universe cannot
// fill k slots.
func BuildOptions(rng *rand.Rand, correct string, candidates []string, k int) ([]Option, int, error) {
	universe := lo.Uniq(append([]string{correct}, candidates...))
	if len(universe) < k {
		return nil, 0, errors.NewInsufficientCandidatesError(len(universe), k)
	}

	seen := map[string]bool{correct: true}
	texts := []string{correct}
	for len(texts) < k {
		pick, ok := random.Pick(rng, candidates)
		if !ok {
			// Unreachable: the universe guard above implies candidates exist.
			return nil, 0, errors.NewInsufficientCandidatesError(len(universe), k)
		}
		if !seen[pick] {
			seen[pick] = true
			texts = append(texts, pick)
		}
	}

	random.Shuffle(rng, texts)

	options := make([]Option, len(texts))
	correctIndex := -1
	for i, text := range texts {
		options[i] = Option{Text: text, IsCorrect: text == correct}
		if text == correct {
			correctIndex = i
		}
	}
	return options, correctIndex, nil
}

// FieldOptions builds options for a word question by extracting one field
// from the candidate universe.
func FieldOptions(rng *rand.Rand, correct models.Word, candidates []models.Word, extract Field, k int) ([]Option, int, error) {
	return BuildOptions(rng, extract(correct), lo.Map(candidates, func(w models.Word, _ int) string {
		return extract(w)
	}), k)
}
