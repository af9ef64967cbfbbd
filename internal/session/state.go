package session

import (
	"errors"
	"fmt"

	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/selection"
)

// Phase represents the current phase of a session.
type Phase int

const (
	PhaseLoading    Phase = iota // Waiting for the question bank
	PhaseInProgress              // Serving questions
	PhaseCompleted               // All questions answered, summary frozen
	PhaseError                   // Load or selection failed; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseInProgress:
		return "in_progress"
	case PhaseCompleted:
		return "completed"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

var (
	ErrEmptyAnswer         = errors.New("answer is empty")
	ErrAlreadyAnswered     = errors.New("question already answered")
	ErrAnswerRequired      = errors.New("answer the current question before advancing")
	ErrNotInProgress       = errors.New("session is not in progress")
	ErrNotLoading          = errors.New("session already started")
	ErrScoringDisabled     = errors.New("mode does not accept answers")
	ErrPreconditionMissing = errors.New("theme, mode and day must be selected")
)

// Config is the immutable selection a session is built from.
type Config struct {
	Theme           string
	Day             int
	Mode            mode.Mode
	QuestionsPerDay int
}

// Validate checks that every field needed to start a session is present.
func (c Config) Validate() error {
	if c.Theme == "" || !c.Mode.Valid() {
		return ErrPreconditionMissing
	}
	if c.Day < 1 {
		return fmt.Errorf("%w: %w", ErrPreconditionMissing, selection.ErrInvalidDay)
	}
	return nil
}

func (c Config) perDay() int {
	if c.QuestionsPerDay <= 0 {
		return selection.DefaultQuestionsPerDay
	}
	return c.QuestionsPerDay
}

// Prompt is a read-only view of the current question.
type Prompt struct {
	// Index is zero-based; Total is the session length.
	Index int
	Total int

	Question questionbank.Question

	// Options holds the choices in display order. Empty when FreeText.
	Options []string

	// FreeText is true when the answer must be typed.
	FreeText bool

	Answered bool
}

// Feedback is the result of one submitted answer.
type Feedback struct {
	Correct       bool
	UserAnswer    string
	CorrectAnswer string
	Explanation   string
}

// WrongAnswer records a missed question for the summary and export.
type WrongAnswer struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}
