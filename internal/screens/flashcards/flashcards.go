package flashcards

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/router"
	"github.com/abhisek/quizday/internal/screen"
	sess "github.com/abhisek/quizday/internal/session"
	"github.com/abhisek/quizday/internal/ui/components"
	"github.com/abhisek/quizday/internal/ui/layout"
	"github.com/abhisek/quizday/internal/ui/theme"
)

// cardsReadyMsg carries the day's cards once loaded.
type cardsReadyMsg struct {
	Cards []questionbank.Question
	Err   error
}

// FlashcardsScreen flips through a day's cards without scoring or timing.
type FlashcardsScreen struct {
	env    *screen.Env
	cfg    sess.Config
	deck   *sess.Deck
	errMsg string
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)
var _ screen.ContextProvider = (*FlashcardsScreen)(nil)

// New creates a FlashcardsScreen for cfg.
func New(env *screen.Env, cfg sess.Config) *FlashcardsScreen {
	return &FlashcardsScreen{env: env, cfg: cfg}
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	loader := s.env.Loader
	cfg := s.cfg
	return func() tea.Msg {
		cards, err := sess.Prepare(context.Background(), loader, cfg, nil)
		return cardsReadyMsg{Cards: cards, Err: err}
	}
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) HeaderContext() string {
	return fmt.Sprintf("%s · Day %d", s.env.Catalog.Name(s.cfg.Theme), s.cfg.Day)
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	if s.deck == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.deck.Completed() {
		return []layout.KeyHint{
			{Key: "←", Description: "Review"},
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsReadyMsg:
		if msg.Err != nil {
			s.env.Logger.Error("load flashcards", "theme", s.cfg.Theme, "day", s.cfg.Day, "error", msg.Err)
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.deck = sess.NewDeck(msg.Cards, true)
		return s, nil

	case tea.KeyMsg:
		if s.deck == nil {
			return s, nil
		}
		switch msg.String() {
		case "space", " ", "enter":
			if s.deck.Completed() {
				if msg.String() == "enter" {
					return s, func() tea.Msg { return router.PopScreenMsg{} }
				}
				return s, nil
			}
			s.deck.Flip()
		case "right", "l", "n":
			s.deck.Next()
		case "left", "h", "p":
			s.deck.Prev()
		}
	}
	return s, nil
}

func (s *FlashcardsScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press Esc to go back.", s.errMsg))
	case s.deck == nil:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading flashcards...")
	case s.deck.Completed():
		return s.renderCompleted(width)
	}

	card, _ := s.deck.Current()
	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewProgressBar(s.deck.Index()+1, s.deck.Len(), min(width-8, 50))
	b.WriteString(layout.Centered(bar.View(), width))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 60)
	var face string
	if s.deck.Flipped() {
		var back strings.Builder
		back.WriteString(card.Answer)
		if card.Explanation != "" {
			back.WriteString("\n\n")
			back.WriteString(card.Explanation)
		}
		face = theme.FlashcardBack.Width(cardWidth).Render(back.String())
	} else {
		face = theme.FlashcardFront.Width(cardWidth).Render(card.Prompt)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, face))
	b.WriteString("\n\n")

	side := "Question"
	if s.deck.Flipped() {
		side = "Answer"
	}
	b.WriteString(layout.Centered(theme.Hint.Render(side), width))
	return b.String()
}

func (s *FlashcardsScreen) renderCompleted(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(theme.Title.Render("Deck complete!"), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(theme.Body.Render(
		fmt.Sprintf("You reviewed all %d flashcards for Day %d.", s.deck.Len(), s.cfg.Day)), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(theme.Hint.Render("Press Enter to choose another day."), width))
	return b.String()
}
