package session

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/selection"
	sess "github.com/abhisek/quizday/internal/session"
	"github.com/abhisek/quizday/internal/ui/components"
	"github.com/abhisek/quizday/internal/ui/layout"
	"github.com/abhisek/quizday/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.ctrl.Phase() == sess.PhaseLoading {
		return renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestionView(width)
}

func (s *SessionScreen) renderQuestionView(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	// Status line: question counter, score and timer.
	status := fmt.Sprintf("Question %d of %d    Score: %d", s.prompt.Index+1, s.prompt.Total, s.ctrl.Score())
	timerStr := theme.Timer.Render("⏱ " + s.elapsed)
	b.WriteString(layout.Centered(theme.Subtitle.Render(status)+"    "+timerStr, width))
	b.WriteString("\n")

	barWidth := min(width-8, 50)
	bar := components.NewProgressBar(s.prompt.Index, s.prompt.Total, barWidth)
	b.WriteString(layout.Centered(bar.View(), width))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 70)
	card := theme.Card.Width(cardWidth).Render(s.prompt.Question.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	if s.prompt.FreeText {
		b.WriteString(layout.Centered(s.input.View(), width))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	}
	b.WriteString("\n")

	if s.feedback != nil {
		b.WriteString(s.renderFeedback(width))
	}
	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	fb := s.feedback
	var b strings.Builder
	b.WriteString("\n")

	if fb.Correct {
		b.WriteString(layout.Centered(theme.Correct.Render("✓ Correct!"), width))
	} else {
		b.WriteString(layout.Centered(theme.Incorrect.Render("✗ Not quite."), width))
		b.WriteString("\n")
		b.WriteString(layout.Centered(theme.Body.Render("Answer: "+fb.CorrectAnswer), width))
	}
	b.WriteString("\n\n")

	explain := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.TextDim).
		Render(fb.Explanation)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, explain))
	b.WriteString("\n\n")

	next := "Press any key for the next question"
	if s.prompt.Index+1 >= s.prompt.Total {
		next = "Press any key to see your results"
	}
	b.WriteString(layout.Centered(theme.Hint.Render(next), width))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far will not be scored."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading questions...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

// describeError turns load and selection failures into a message for the
// learner.
func describeError(err error) string {
	switch {
	case errors.Is(err, questionbank.ErrNotFound):
		return "no question bank was found for this theme"
	case errors.Is(err, questionbank.ErrEmptyBank):
		return "the question bank for this theme is empty"
	case errors.Is(err, selection.ErrSelectionEmpty):
		return "there are no questions for this day"
	case errors.Is(err, selection.ErrInvalidDay):
		return "that day does not exist"
	case err == nil:
		return "unknown error"
	}
	return err.Error()
}
