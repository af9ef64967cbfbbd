package session

import (
	"math"
	"time"

	"github.com/abhisek/quizday/internal/mode"
)

// Summary is the read-only result of a completed session.
type Summary struct {
	SessionID string    `json:"session_id"`
	Theme     string    `json:"theme"`
	Day       int       `json:"day"`
	Mode      mode.Mode `json:"mode"`

	Score           int    `json:"score"`
	Total           int    `json:"total"`
	AccuracyPercent int    `json:"accuracy_percent"`
	Elapsed         string `json:"elapsed"`
	ElapsedSeconds  int    `json:"elapsed_seconds"`

	WrongAnswers []WrongAnswer `json:"wrong_answers"`
	CompletedAt  time.Time     `json:"completed_at"`
}

// BuildSummary snapshots the controller's result.
func BuildSummary(c *Controller) Summary {
	total := len(c.questions)
	wrong := make([]WrongAnswer, len(c.wrong))
	copy(wrong, c.wrong)

	return Summary{
		SessionID:       c.id,
		Theme:           c.cfg.Theme,
		Day:             c.cfg.Day,
		Mode:            c.cfg.Mode,
		Score:           c.score,
		Total:           total,
		AccuracyPercent: Accuracy(c.score, total),
		Elapsed:         c.timer.FormattedTime(),
		ElapsedSeconds:  c.timer.ElapsedSeconds(),
		WrongAnswers:    wrong,
		CompletedAt:     c.now(),
	}
}

// Accuracy returns score/total as a whole percentage rounded half up,
// or 0 when total is 0.
func Accuracy(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
