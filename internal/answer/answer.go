package answer

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dashes      = strings.NewReplacer("–", "-", "—", "-")
	whitespace  = regexp.MustCompile(`\s+`)
	trailingEra = regexp.MustCompile(`\s*ad\s*$`)
)

// Validate compares a typed answer against the canonical answer.
// Both sides go through Normalize and must then be equal.
//
// Normalization rules:
// - Surrounding whitespace is trimmed
// - Comparison is case-insensitive
// - En and em dashes are treated as a plain hyphen
// - Runs of internal whitespace collapse to one space
// - A trailing "AD" era suffix matches regardless of spacing ("1600AD" == "1600 ad")
func Validate(userAnswer, correctAnswer string) bool {
	return Normalize(userAnswer) == Normalize(correctAnswer)
}

// Normalize applies the free-text normalization pipeline to s.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = dashes.Replace(s)
	s = whitespace.ReplaceAllString(s, " ")
	s = trailingEra.ReplaceAllString(s, " ad")
	return s
}

// MatchChoice reports whether a selected option is the canonical answer.
// Options are drawn verbatim from the same record as the answer, so the
// comparison is exact.
func MatchChoice(selected, correctAnswer string) bool {
	return selected == correctAnswer
}

// ResolveChoice maps line-mode input onto one of the options. An exact
// (case-insensitive) option text wins; otherwise a 1-based index is tried,
// so numeric options like atomic numbers select themselves. The returned
// option is the verbatim choice text.
func ResolveChoice(input string, choices []string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	for _, c := range choices {
		if strings.EqualFold(strings.TrimSpace(c), input) {
			return c, true
		}
	}

	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(choices) {
		return choices[idx-1], true
	}
	return "", false
}
