package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizday/internal/router"
	"github.com/abhisek/quizday/internal/screen"
	"github.com/abhisek/quizday/internal/screens/summary"
	sess "github.com/abhisek/quizday/internal/session"
	"github.com/abhisek/quizday/internal/ui/components"
	"github.com/abhisek/quizday/internal/ui/layout"
)

// SessionScreen presents a scored quiz session. All state lives in the
// controller; the screen mirrors it from controller events.
type SessionScreen struct {
	env         *screen.Env
	cfg         sess.Config
	ctrl        *sess.Controller
	unsubscribe func()

	prompt   sess.Prompt
	feedback *sess.Feedback
	result   *sess.Summary
	choice   components.MultiChoice
	input    components.TextInput
	elapsed  string

	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.ContextProvider = (*SessionScreen)(nil)
var _ screen.EscapeInterceptor = (*SessionScreen)(nil)
var _ screen.Closer = (*SessionScreen)(nil)

// New creates a SessionScreen for cfg. Questions are loaded on Init.
func New(env *screen.Env, cfg sess.Config) *SessionScreen {
	s := &SessionScreen{
		env:     env,
		cfg:     cfg,
		ctrl:    sess.New(cfg, sess.WithLogger(env.Logger)),
		input:   components.NewTextInput("Type your answer...", 120),
		elapsed: "00:00",
	}
	s.unsubscribe = s.ctrl.Subscribe(s.onEvent)
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(s.prepare(), s.input.Init())
}

// prepare loads and selects the questions off the event loop. The
// controller itself is only touched from Update.
func (s *SessionScreen) prepare() tea.Cmd {
	loader := s.env.Loader
	cfg := s.cfg
	return func() tea.Msg {
		qs, err := sess.Prepare(context.Background(), loader, cfg, nil)
		return questionsReadyMsg{Questions: qs, Err: err}
	}
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) HeaderContext() string {
	return s.env.Catalog.Name(s.cfg.Theme) + " · Day " + strconv.Itoa(s.cfg.Day)
}

// InterceptsEscape keeps Esc for the quit confirmation while questions
// are being asked.
func (s *SessionScreen) InterceptsEscape() bool {
	return s.ctrl.Phase() == sess.PhaseInProgress
}

// Close stops the session timer and detaches from the controller.
func (s *SessionScreen) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.ctrl.Close()
}

// Controller exposes the underlying session for tests and callers that
// need the raw state.
func (s *SessionScreen) Controller() *sess.Controller {
	return s.ctrl
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.ctrl.Phase() == sess.PhaseLoading:
		return nil
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case s.prompt.FreeText:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "1-9", Description: "Pick"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleReady(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.ctrl.Phase() == sess.PhaseInProgress && s.prompt.FreeText && s.feedback == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// onEvent mirrors controller transitions into the view state.
func (s *SessionScreen) onEvent(ev sess.Event) {
	switch ev.Kind {
	case sess.EventStarted, sess.EventAdvanced:
		s.syncPrompt()
	case sess.EventFeedback:
		s.feedback = ev.Feedback
		if s.prompt.FreeText {
			s.input.Submit(ev.Feedback.Correct)
		} else {
			s.choice.Submit(ev.Feedback.CorrectAnswer)
		}
	case sess.EventCompleted:
		s.result = ev.Summary
	case sess.EventFailed:
		s.errMsg = describeError(ev.Err)
	}
}

func (s *SessionScreen) syncPrompt() {
	p, ok := s.ctrl.Current()
	if !ok {
		return
	}
	s.prompt = p
	s.feedback = nil
	s.choice = components.NewMultiChoice(p.Options)
	s.input = components.NewTextInput("Type your answer...", 120)
}

func (s *SessionScreen) handleReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		_ = s.ctrl.Fail(msg.Err)
		return s, nil
	}
	if err := s.ctrl.Begin(msg.Questions); err != nil {
		return s, nil
	}

	cmds := []tea.Cmd{s.input.Init()}
	if s.ctrl.Capabilities().Timing {
		cmds = append(cmds, tickCmd())
	}
	return s, tea.Batch(cmds...)
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	s.elapsed = s.ctrl.ElapsedTime()
	if s.ctrl.Phase() != sess.PhaseInProgress {
		return s, nil
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.ctrl.Phase() != sess.PhaseInProgress {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch msg.String() {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if msg.String() == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	if s.feedback != nil {
		return s.advance()
	}

	if s.prompt.FreeText {
		if msg.String() == "enter" {
			return s.submit(s.input.Value())
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	var chosen bool
	s.choice, chosen = s.choice.Update(msg)
	if chosen {
		return s.submit(s.choice.Value())
	}
	return s, nil
}

func (s *SessionScreen) submit(value string) (screen.Screen, tea.Cmd) {
	if _, err := s.ctrl.SubmitAnswer(value); err != nil {
		if !errors.Is(err, sess.ErrEmptyAnswer) {
			s.env.Logger.Warn("submit answer", "error", err)
		}
	}
	return s, nil
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.Advance(); err != nil {
		s.env.Logger.Warn("advance session", "error", err)
		return s, nil
	}
	if s.result == nil {
		return s, s.input.Init()
	}

	next := summary.New(s.env, *s.result)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
