package session

import (
	"time"

	"github.com/abhisek/quizday/internal/questionbank"
)

// questionsReadyMsg is sent when the day's questions have been selected.
type questionsReadyMsg struct {
	Questions []questionbank.Question
	Err       error
}

// timerTickMsg is sent every second to refresh the elapsed time.
type timerTickMsg time.Time
