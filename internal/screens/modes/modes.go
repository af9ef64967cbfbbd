package modes

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/router"
	"github.com/abhisek/quizday/internal/screen"
	"github.com/abhisek/quizday/internal/screens/days"
	"github.com/abhisek/quizday/internal/ui/components"
	"github.com/abhisek/quizday/internal/ui/layout"
	"github.com/abhisek/quizday/internal/ui/theme"
)

// ModesScreen picks the practice mode for a theme.
type ModesScreen struct {
	env   *screen.Env
	theme string
	menu  components.Menu
}

var _ screen.Screen = (*ModesScreen)(nil)
var _ screen.ContextProvider = (*ModesScreen)(nil)

// New creates a ModesScreen for themeID.
func New(env *screen.Env, themeID string) *ModesScreen {
	s := &ModesScreen{env: env, theme: themeID}

	all := mode.All()
	items := make([]components.MenuItem, 0, len(all))
	for _, info := range all {
		m := info.Mode
		items = append(items, components.MenuItem{
			Label:       info.Name,
			Description: info.Description,
			Action:      func() tea.Cmd { return s.choose(m) },
		})
	}
	s.menu = components.NewMenu(items)

	if last := env.Prefs.Mode(context.Background()); last != "" {
		for i, info := range all {
			if info.Mode == last {
				s.menu.Select(i)
			}
		}
	}
	return s
}

func (s *ModesScreen) choose(m mode.Mode) tea.Cmd {
	if err := s.env.Prefs.SetMode(context.Background(), m); err != nil {
		s.env.Logger.Warn("save mode preference", "error", err)
	}
	next := days.New(s.env, s.theme, m)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *ModesScreen) Init() tea.Cmd {
	return nil
}

func (s *ModesScreen) Title() string {
	return "Choose a Mode"
}

func (s *ModesScreen) HeaderContext() string {
	return s.env.Catalog.Name(s.theme)
}

func (s *ModesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ModesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Title.Render(s.env.Catalog.Name(s.theme)), width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Subtitle.Render("How would you like to practice?"), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(s.menu.View(), width))
	return b.String()
}
