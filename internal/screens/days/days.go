package days

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/router"
	"github.com/abhisek/quizday/internal/screen"
	"github.com/abhisek/quizday/internal/screens/flashcards"
	"github.com/abhisek/quizday/internal/screens/session"
	"github.com/abhisek/quizday/internal/selection"
	sess "github.com/abhisek/quizday/internal/session"
	"github.com/abhisek/quizday/internal/ui/components"
	"github.com/abhisek/quizday/internal/ui/layout"
	"github.com/abhisek/quizday/internal/ui/theme"
)

// bankLoadedMsg reports the size of the theme's bank, or why it could not
// be loaded.
type bankLoadedMsg struct {
	Count int
	Err   error
}

// DaysScreen lists the days available for a theme and mode.
type DaysScreen struct {
	env     *screen.Env
	theme   string
	mode    mode.Mode
	loading bool
	errMsg  string
	days    []selection.Day
	menu    components.Menu
}

var _ screen.Screen = (*DaysScreen)(nil)
var _ screen.ContextProvider = (*DaysScreen)(nil)
var _ screen.KeyHintProvider = (*DaysScreen)(nil)

// New creates a DaysScreen. The bank is loaded when the screen starts.
func New(env *screen.Env, themeID string, m mode.Mode) *DaysScreen {
	return &DaysScreen{env: env, theme: themeID, mode: m, loading: true}
}

func (s *DaysScreen) Init() tea.Cmd {
	loader := s.env.Loader
	themeID := s.theme
	return func() tea.Msg {
		qs, err := loader.Load(context.Background(), themeID)
		return bankLoadedMsg{Count: len(qs), Err: err}
	}
}

func (s *DaysScreen) Title() string {
	return "Choose a Day"
}

func (s *DaysScreen) HeaderContext() string {
	return s.env.Catalog.Name(s.theme) + " · " + s.mode.Info().Name
}

func (s *DaysScreen) KeyHints() []layout.KeyHint {
	if s.loading || s.errMsg != "" {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DaysScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		s.handleLoaded(msg)
		return s, nil
	}

	if s.loading || s.errMsg != "" {
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DaysScreen) handleLoaded(msg bankLoadedMsg) {
	s.loading = false
	if msg.Err != nil {
		s.env.Logger.Error("load question bank", "theme", s.theme, "error", msg.Err)
		s.errMsg = msg.Err.Error()
		return
	}

	s.days = selection.Days(msg.Count, s.mode, s.env.PerDay)
	if len(s.days) == 0 {
		s.errMsg = "this theme has no questions yet"
		return
	}

	items := make([]components.MenuItem, 0, len(s.days))
	for _, d := range s.days {
		day := d.Number
		items = append(items, components.MenuItem{
			Label:    d.Label,
			Action:   func() tea.Cmd { return s.choose(day) },
			Disabled: d.Items == 0,
		})
	}
	s.menu = components.NewMenu(items)

	if last := s.env.Prefs.Day(context.Background()); last >= 1 && last <= len(s.days) {
		s.menu.Select(last - 1)
	}
}

func (s *DaysScreen) choose(day int) tea.Cmd {
	if err := s.env.Prefs.SetDay(context.Background(), day); err != nil {
		s.env.Logger.Warn("save day preference", "error", err)
	}

	cfg := sess.Config{
		Theme:           s.theme,
		Day:             day,
		Mode:            s.mode,
		QuestionsPerDay: s.env.PerDay,
	}
	next := NewSessionScreen(s.env, cfg)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

// NewSessionScreen returns the screen that runs cfg: a flashcard deck for
// modes without scoring, a quiz otherwise.
func NewSessionScreen(env *screen.Env, cfg sess.Config) screen.Screen {
	if !cfg.Mode.Capabilities().Scoring {
		return flashcards.New(env, cfg)
	}
	return session.New(env, cfg)
}

func (s *DaysScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Title.Render(s.env.Catalog.Name(s.theme)), width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Subtitle.Render(s.mode.Info().Name), width))
	b.WriteString("\n\n")

	switch {
	case s.loading:
		b.WriteString(layout.Centered(theme.Hint.Render("Loading questions..."), width))
	case s.errMsg != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Could not load questions: %s\n\nPress Esc to go back.", s.errMsg)))
	default:
		b.WriteString(layout.Centered(s.menu.View(), width))
	}
	return b.String()
}
