package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/router"
	"github.com/abhisek/quizday/internal/screen"
	"github.com/abhisek/quizday/internal/screens/days"
	"github.com/abhisek/quizday/internal/screens/modes"
	"github.com/abhisek/quizday/internal/screens/themes"
	"github.com/abhisek/quizday/internal/session"
	"github.com/abhisek/quizday/internal/ui/layout"
)

// Options selects where the app starts. Each field that is set skips one
// selection step; the skipped screens stay on the stack so Esc walks back
// through them.
type Options struct {
	Env   *screen.Env
	Theme string
	Mode  mode.Mode
	Day   int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the selection screens implied
// by opts.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(themes.New(opts.Env), initialStack(opts)...),
	}
}

func initialStack(opts Options) []screen.Screen {
	var stack []screen.Screen
	if opts.Theme == "" {
		return stack
	}
	stack = append(stack, modes.New(opts.Env, opts.Theme))

	if !opts.Mode.Valid() {
		return stack
	}
	stack = append(stack, days.New(opts.Env, opts.Theme, opts.Mode))

	if opts.Day < 1 {
		return stack
	}
	return append(stack, days.NewSessionScreen(opts.Env, session.Config{
		Theme:           opts.Theme,
		Day:             opts.Day,
		Mode:            opts.Mode,
		QuestionsPerDay: opts.Env.PerDay,
	}))
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if ei, ok := m.router.Active().(screen.EscapeInterceptor); ok && ei.InterceptsEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, context := "", ""
	if active != nil {
		title = active.Title()
	}
	if cp, ok := active.(screen.ContextProvider); ok {
		context = cp.HeaderContext()
	}

	header := layout.RenderHeader(title, context, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and releases the screens on exit.
func Run(opts Options) error {
	model := newAppModel(opts)
	defer model.router.Close()

	p := tea.NewProgram(model)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
