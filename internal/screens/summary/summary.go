package summary

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizday/internal/export"
	"github.com/abhisek/quizday/internal/router"
	"github.com/abhisek/quizday/internal/screen"
	"github.com/abhisek/quizday/internal/session"
	"github.com/abhisek/quizday/internal/ui/layout"
	"github.com/abhisek/quizday/internal/ui/theme"
)

// exportDoneMsg reports where the report was written.
type exportDoneMsg struct {
	Path string
	Err  error
}

// SummaryScreen displays the result of a completed session.
type SummaryScreen struct {
	env     *screen.Env
	summary session.Summary
	status  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(env *screen.Env, summary session.Summary) *SummaryScreen {
	return &SummaryScreen{env: env, summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "E", Description: "Export"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.Err != nil {
			s.env.Logger.Error("export summary", "error", msg.Err)
			s.status = "Export failed: " + msg.Err.Error()
		} else {
			s.status = "Saved to " + msg.Path
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "e", "E":
			return s, s.exportCmd()
		case "enter", "esc":
			// The summary replaced the session, so this returns to the day list.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// Report builds the export payload for the summary.
func (s *SummaryScreen) Report() export.Report {
	return export.Report{
		ThemeName: s.env.Catalog.Name(s.summary.Theme),
		ModeName:  s.summary.Mode.Info().Name,
		Summary:   s.summary,
	}
}

func (s *SummaryScreen) exportCmd() tea.Cmd {
	report := s.Report()
	path := filepath.Join(s.env.ExportDir, export.FileName(report, export.FormatMarkdown))
	return func() tea.Msg {
		err := export.WriteFile(path, report, export.FormatMarkdown)
		return exportDoneMsg{Path: path, Err: err}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · Day %d · Time: %s", s.env.Catalog.Name(sum.Theme), sum.Day, sum.Elapsed)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d/%d        Accuracy: %d%%", sum.Score, sum.Total, sum.AccuracyPercent)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if len(sum.WrongAnswers) > 0 {
		b.WriteString(layout.Centered(
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review"), width))
		b.WriteString("\n")
		b.WriteString(layout.Centered(layout.Divider(width, 60), width))
		b.WriteString("\n\n")

		block := lipgloss.NewStyle().Width(min(width-8, 70))
		for i, w := range sum.WrongAnswers {
			var e strings.Builder
			e.WriteString(theme.Body.Render(fmt.Sprintf("%d. %s", i+1, w.Question)))
			e.WriteString("\n")
			e.WriteString(theme.Incorrect.Render("   You said: " + w.UserAnswer))
			e.WriteString("\n")
			e.WriteString(theme.Correct.Render("   Answer:   " + w.CorrectAnswer))
			e.WriteString("\n")
			e.WriteString(theme.Hint.Render("   " + w.Explanation))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block.Render(e.String())))
			b.WriteString("\n\n")
		}
	} else if sum.Total > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("Perfect score!"))
		b.WriteString("\n\n")
	}

	if s.status != "" {
		b.WriteString(layout.Centered(theme.Hint.Render(s.status), width))
	}

	return b.String()
}
