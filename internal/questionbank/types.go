package questionbank

import "strings"

// DefaultExplanation is shown when a record carries no explanation.
const DefaultExplanation = "No explanation available."

// Question is one record of a themed question bank, loaded verbatim.
type Question struct {
	// Prompt is the question text.
	Prompt string `json:"question"`

	// Answer is the canonical correct answer.
	Answer string `json:"answer"`

	// Choices are the multiple-choice options, including the answer.
	// Ignored by cloze and flashcard sessions.
	Choices []string `json:"choices,omitempty"`

	// Explanation is optional text shown after answering.
	Explanation string `json:"explanation,omitempty"`
}

// ExplanationOrDefault returns the explanation, or DefaultExplanation
// when it is blank.
func (q Question) ExplanationOrDefault() string {
	if strings.TrimSpace(q.Explanation) == "" {
		return DefaultExplanation
	}
	return q.Explanation
}

// HasChoices reports whether the record can be asked as multiple choice.
func (q Question) HasChoices() bool {
	return len(q.Choices) > 0
}
