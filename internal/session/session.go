package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizday/internal/answer"
	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/selection"
	"github.com/abhisek/quizday/internal/timer"
)

// BankLoader loads the full question bank for a theme.
type BankLoader interface {
	Load(ctx context.Context, theme string) ([]questionbank.Question, error)
}

// Prepare loads the bank for cfg.Theme and returns the shuffled questions
// for the configured day. Flashcard decks and controllers share it.
func Prepare(ctx context.Context, loader BankLoader, cfg Config, r *rand.Rand) ([]questionbank.Question, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	all, err := loader.Load(ctx, cfg.Theme)
	if err != nil {
		return nil, err
	}
	return selection.SelectQuestions(all, cfg.Day, cfg.Mode, cfg.perDay(), r)
}

// Controller is the per-session state machine. It is not safe for
// concurrent use; all transitions are expected to come from one event loop.
type Controller struct {
	id     string
	cfg    Config
	caps   mode.Capabilities
	rng    *rand.Rand
	timer  *timer.Timer
	logger *slog.Logger
	now    func() time.Time

	phase     Phase
	err       error
	questions []questionbank.Question
	options   []string
	index     int
	score     int
	answered  bool
	feedback  *Feedback
	wrong     []WrongAnswer
	summary   *Summary
	listeners map[int]func(Event)
	nextSubID int
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand makes question and option shuffling deterministic.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithClock replaces time.Now for the session timer.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller in PhaseLoading.
func New(cfg Config, opts ...Option) *Controller {
	c := &Controller{
		id:        uuid.New().String(),
		cfg:       cfg,
		caps:      cfg.Mode.Capabilities(),
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
		phase:     PhaseLoading,
		listeners: make(map[int]func(Event)),
	}
	for _, o := range opts {
		o(c)
	}
	c.timer = timer.New(timer.WithClock(c.now))
	c.logger = c.logger.With("session_id", c.id, "theme", cfg.Theme, "day", cfg.Day, "mode", string(cfg.Mode))
	return c
}

// Load fetches and selects the session's questions, then begins the
// session. Any failure moves the controller to PhaseError.
func (c *Controller) Load(ctx context.Context, loader BankLoader) error {
	if c.phase != PhaseLoading {
		return ErrNotLoading
	}
	qs, err := Prepare(ctx, loader, c.cfg, c.rng)
	if err != nil {
		return c.Fail(err)
	}
	return c.Begin(qs)
}

// Begin starts the session with an already selected question sequence.
// An empty sequence is a terminal selection error.
func (c *Controller) Begin(questions []questionbank.Question) error {
	if c.phase != PhaseLoading {
		return ErrNotLoading
	}
	if len(questions) == 0 {
		return c.Fail(selection.ErrSelectionEmpty)
	}

	c.questions = questions
	c.index = 0
	c.score = 0
	c.phase = PhaseInProgress
	c.prepareCurrent()

	c.timer.Reset()
	if c.caps.Timing {
		c.timer.Start(nil)
	}

	c.logger.Info("session started", "questions", len(questions))
	c.emit(Event{Kind: EventStarted})
	return nil
}

// Fail moves a loading session to the terminal PhaseError and returns err.
// Callers that fetch questions themselves use it to report load errors.
func (c *Controller) Fail(err error) error {
	if c.phase != PhaseLoading {
		return ErrNotLoading
	}
	c.phase = PhaseError
	c.err = err
	c.timer.Stop()
	c.logger.Error("session failed", "error", err)
	c.emit(Event{Kind: EventFailed, Err: err})
	return err
}

// prepareCurrent shuffles the options of the current question once, when
// it becomes current.
func (c *Controller) prepareCurrent() {
	c.answered = false
	c.feedback = nil
	c.options = nil

	q := c.questions[c.index]
	if !c.caps.FreeText && q.HasChoices() {
		c.options = selection.Shuffle(q.Choices, c.rng)
	}
}

// Current returns the question being asked. ok is false outside
// PhaseInProgress.
func (c *Controller) Current() (Prompt, bool) {
	if c.phase != PhaseInProgress {
		return Prompt{}, false
	}
	opts := make([]string, len(c.options))
	copy(opts, c.options)
	return Prompt{
		Index:    c.index,
		Total:    len(c.questions),
		Question: c.questions[c.index],
		Options:  opts,
		FreeText: len(c.options) == 0,
		Answered: c.answered,
	}, true
}

// SubmitAnswer grades raw against the current question. Blank input is
// rejected with ErrEmptyAnswer and leaves the state unchanged. Submitting
// does not advance; call Advance after the feedback is acknowledged.
func (c *Controller) SubmitAnswer(raw string) (Feedback, error) {
	if c.phase != PhaseInProgress {
		return Feedback{}, ErrNotInProgress
	}
	if !c.caps.Scoring {
		return Feedback{}, ErrScoringDisabled
	}
	if c.answered {
		return Feedback{}, ErrAlreadyAnswered
	}
	if strings.TrimSpace(raw) == "" {
		return Feedback{}, ErrEmptyAnswer
	}

	q := c.questions[c.index]
	var correct bool
	if len(c.options) == 0 {
		correct = answer.Validate(raw, q.Answer)
	} else {
		correct = answer.MatchChoice(raw, q.Answer)
	}

	fb := Feedback{
		Correct:       correct,
		UserAnswer:    raw,
		CorrectAnswer: q.Answer,
		Explanation:   q.ExplanationOrDefault(),
	}

	c.answered = true
	c.feedback = &fb
	if correct {
		c.score++
	} else {
		c.wrong = append(c.wrong, WrongAnswer{
			Question:      q.Prompt,
			UserAnswer:    raw,
			CorrectAnswer: q.Answer,
			Explanation:   fb.Explanation,
		})
	}

	c.logger.Debug("answer submitted", "index", c.index, "correct", correct)
	c.emit(Event{Kind: EventFeedback, Feedback: &fb})
	return fb, nil
}

// Advance moves to the next question, completing the session after the
// last one. It is a no-op once the session is completed.
func (c *Controller) Advance() error {
	switch c.phase {
	case PhaseCompleted:
		return nil
	case PhaseInProgress:
	default:
		return ErrNotInProgress
	}
	if c.caps.Scoring && !c.answered {
		return ErrAnswerRequired
	}

	c.index++
	if c.index >= len(c.questions) {
		c.complete()
		return nil
	}

	c.prepareCurrent()
	c.emit(Event{Kind: EventAdvanced})
	return nil
}

func (c *Controller) complete() {
	c.index = len(c.questions)
	c.timer.Stop()
	c.phase = PhaseCompleted

	sum := BuildSummary(c)
	c.summary = &sum

	c.logger.Info("session completed",
		"score", sum.Score,
		"total", sum.Total,
		"accuracy", sum.AccuracyPercent,
		"elapsed", sum.Elapsed,
	)
	c.emit(Event{Kind: EventCompleted, Summary: c.summary})
}

// Close stops the timer of an abandoned session.
func (c *Controller) Close() {
	c.timer.Stop()
}

func (c *Controller) ID() string          { return c.id }
func (c *Controller) Config() Config      { return c.cfg }
func (c *Controller) Phase() Phase        { return c.phase }
func (c *Controller) Err() error          { return c.err }
func (c *Controller) Score() int          { return c.score }
func (c *Controller) Index() int          { return c.index }
func (c *Controller) Total() int          { return len(c.questions) }
func (c *Controller) ElapsedTime() string { return c.timer.FormattedTime() }

// Capabilities returns the behavior flags of the session's mode.
func (c *Controller) Capabilities() mode.Capabilities {
	return c.caps
}

// LastFeedback returns the feedback for the current question, if answered.
func (c *Controller) LastFeedback() (Feedback, bool) {
	if c.feedback == nil {
		return Feedback{}, false
	}
	return *c.feedback, true
}

// Summary returns the frozen result once the session is completed.
func (c *Controller) Summary() (Summary, bool) {
	if c.summary == nil {
		return Summary{}, false
	}
	return *c.summary, true
}
