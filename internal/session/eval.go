package session

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Answer evaluation. Every function here is total and pure: any input,
// including empty, has a defined correct/incorrect result.

// Normalize lowercases, trims, and collapses internal whitespace runs to a
// single space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// stripMarks decomposes to NFD and drops combining marks, so "nǐ hǎo"
// becomes "ni hao".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldPinyin reduces a pinyin string to its loose comparison form: marks
// stripped, then every character outside [a-z0-9: ] removed. Tone
// information typed as diacritics is deliberately discarded; there is no
// tone-number mapping.
func FoldPinyin(s string) string {
	folded, _, err := transform.String(stripMarks, Normalize(s))
	if err != nil {
		folded = Normalize(s)
	}

	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ':', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// EvaluateChoice validates a multiple-choice selection against the index
// recorded when the options were built.
func EvaluateChoice(selected, correctIndex int) bool {
	return selected == correctIndex
}

// EvaluatePinyin compares a typed phonetic answer against the expected
// transcription. Exact normalized match first; unless strict, a folded
// comparison accepts tone-diacritic input typed without accents. Blank
// input is always incorrect.
func EvaluatePinyin(input, expected string, strict bool) bool {
	in := Normalize(input)
	if in == "" {
		return false
	}
	if in == Normalize(expected) {
		return true
	}
	if strict {
		return false
	}
	folded := FoldPinyin(in)
	return folded != "" && folded == FoldPinyin(expected)
}

// EvaluateSentence compares a typed sentence against the enumerated
// accepted set: exact normalized match only, no fuzzy fallback. Blank
// input never matches, even against a blank accepted entry.
func EvaluateSentence(input string, accepted []string) bool {
	in := Normalize(input)
	if in == "" {
		return false
	}
	for _, a := range accepted {
		if in == Normalize(a) {
			return true
		}
	}
	return false
}
