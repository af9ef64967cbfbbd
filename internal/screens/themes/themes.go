package themes

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizday/internal/router"
	"github.com/abhisek/quizday/internal/screen"
	"github.com/abhisek/quizday/internal/screens/modes"
	"github.com/abhisek/quizday/internal/ui/components"
	"github.com/abhisek/quizday/internal/ui/layout"
	"github.com/abhisek/quizday/internal/ui/theme"
)

// ThemesScreen is the first step of the selection flow.
type ThemesScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*ThemesScreen)(nil)
var _ screen.KeyHintProvider = (*ThemesScreen)(nil)

// New creates a ThemesScreen with the last chosen theme preselected.
func New(env *screen.Env) *ThemesScreen {
	s := &ThemesScreen{env: env}

	items := make([]components.MenuItem, 0, len(env.Catalog.Themes))
	for _, t := range env.Catalog.Themes {
		id := t.ID
		items = append(items, components.MenuItem{
			Label:  t.Name,
			Action: func() tea.Cmd { return s.choose(id) },
		})
	}
	s.menu = components.NewMenu(items)

	if last := env.Prefs.Theme(context.Background()); last != "" {
		for i, t := range env.Catalog.Themes {
			if t.ID == last {
				s.menu.Select(i)
				break
			}
		}
	}
	return s
}

func (s *ThemesScreen) choose(id string) tea.Cmd {
	if err := s.env.Prefs.SetTheme(context.Background(), id); err != nil {
		s.env.Logger.Warn("save theme preference", "error", err)
	}
	next := modes.New(s.env, id)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *ThemesScreen) Init() tea.Cmd {
	return nil
}

func (s *ThemesScreen) Title() string {
	return "Choose a Theme"
}

func (s *ThemesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ThemesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ThemesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Title.Render("What do you want to practice today?"), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(s.menu.View(), width))
	return b.String()
}
